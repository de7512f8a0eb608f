package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogDeviceTypeToken describes device type log entry.
	LogDeviceTypeToken = "device_type"
	// LogDeviceNameToken describes device name log entry.
	LogDeviceNameToken = "device_name"
	// LogDeviceCommandToken describes device command log entry.
	LogDeviceCommandToken = "device_cmd"
	// LogVehicleToken describes vehicle ID log entry.
	LogVehicleToken = "vehicle"
	// LogRemoteCommandToken describes remote vehicle command log entry.
	LogRemoteCommandToken = "remote_cmd"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)

const (
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
)
