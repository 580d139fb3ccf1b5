package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	DBPath       string
	DBExists     bool // true = Found, false = Not Found
	AppDataDir   string
	ServerAddr   string
	LogLevel     string
	AccountCount int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = pterm.Gray("None (using defaults)")
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Accounts", pterm.Sprint(data.AccountCount)},
		{"Server Address", data.ServerAddr},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
