package wallconnector

// One record type per status endpoint, mapped field-for-field from the
// JSON the wall connector returns. Records are never mutated after
// decoding.

// VersionInfo is the payload of /api/1/version
type VersionInfo struct {
	FirmwareVersion string `json:"firmware_version"`
	GitBranch       string `json:"git_branch"`
	PartNumber      string `json:"part_number"`
	SerialNumber    string `json:"serial_number"`
	WebService      string `json:"web_service"`
}

// VitalsSnapshot is the payload of /api/1/vitals - the live electrical
// and thermal state of the unit
type VitalsSnapshot struct {
	ContactorClosed   bool    `json:"contactor_closed"`
	VehicleConnected  bool    `json:"vehicle_connected"`
	SessionS          int64   `json:"session_s"`
	GridV             float64 `json:"grid_v"`
	GridHz            float64 `json:"grid_hz"`
	VehicleCurrentA   float64 `json:"vehicle_current_a"`
	CurrentAA         float64 `json:"currentA_a"`
	CurrentBA         float64 `json:"currentB_a"`
	CurrentCA         float64 `json:"currentC_a"`
	CurrentNA         float64 `json:"currentN_a"`
	VoltageAV         float64 `json:"voltageA_v"`
	VoltageBV         float64 `json:"voltageB_v"`
	VoltageCV         float64 `json:"voltageC_v"`
	RelayCoilV        float64 `json:"relay_coil_v"`
	PcbaTempC         float64 `json:"pcba_temp_c"`
	HandleTempC       float64 `json:"handle_temp_c"`
	McuTempC          float64 `json:"mcu_temp_c"`
	UptimeS           int64   `json:"uptime_s"`
	InputThermopileUv int64   `json:"input_thermopile_uv"`
	ProxV             float64 `json:"prox_v"`
	PilotHighV        float64 `json:"pilot_high_v"`
	PilotLowV         float64 `json:"pilot_low_v"`
	SessionEnergyWh   float64 `json:"session_energy_wh"`
	ConfigStatus      int     `json:"config_status"`
	EvseState         int     `json:"evse_state"`

	// Opaque not-ready reason codes; the firmware does not document a
	// symbolic mapping so they are surfaced as-is.
	CurrentAlerts []int `json:"current_alerts"`
}

// LifetimeStats is the payload of /api/1/lifetime - counters
// accumulated since manufacture
type LifetimeStats struct {
	ContactorCycles       uint32  `json:"contactor_cycles"`
	ContactorCyclesLoaded uint32  `json:"contactor_cycles_loaded"`
	AlertCount            uint32  `json:"alert_count"`
	ThermalFoldbacks      uint32  `json:"thermal_foldbacks"`
	AvgStartupTemp        float64 `json:"avg_startup_temp"`
	ChargeStarts          uint32  `json:"charge_starts"`
	EnergyWh              uint64  `json:"energy_wh"`
	ConnectorCycles       uint32  `json:"connector_cycles"`
	UptimeS               int64   `json:"uptime_s"`
	ChargingTimeS         int64   `json:"charging_time_s"`
}

// WifiStatus is the payload of /api/1/wifi_status. The SSID arrives
// base64 encoded.
type WifiStatus struct {
	WifiSSID           string `json:"wifi_ssid"`
	WifiSignalStrength int    `json:"wifi_signal_strength"`
	WifiRSSI           int    `json:"wifi_rssi"`
	WifiSNR            int    `json:"wifi_snr"`
	WifiConnected      bool   `json:"wifi_connected"`
	WifiInfraIP        string `json:"wifi_infra_ip"`
	Internet           bool   `json:"internet"`
	WifiMAC            string `json:"wifi_mac"`
}
