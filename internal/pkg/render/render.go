package render

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/wallconnector"
)

/*
 *  Pure formatting of decoded records into fixed text layouts. Field
 *  order, labels, units and precision never vary between invocations
 *  so the output stays diffable.
 */

func Version(v *wallconnector.VersionInfo) []string {
	return []string{
		"Tesla Wall Connector Version Info:",
		fmt.Sprintf("  Firmware Version: %s", v.FirmwareVersion),
		fmt.Sprintf("  Git Branch:       %s", v.GitBranch),
		fmt.Sprintf("  Part Number:      %s", v.PartNumber),
		fmt.Sprintf("  Serial Number:    %s", v.SerialNumber),
		fmt.Sprintf("  Web Service:      %s", v.WebService),
	}
}

func Lifetime(l *wallconnector.LifetimeStats) []string {
	return []string{
		"Tesla Wall Connector Lifetime Stats:",
		fmt.Sprintf("  Charge Starts:      %d", l.ChargeStarts),
		fmt.Sprintf("  Energy Delivered:   %.2f kWh", float64(l.EnergyWh)/1000.0),
		fmt.Sprintf("  Charging Time:      %s", Duration(l.ChargingTimeS)),
		fmt.Sprintf("  Uptime:             %s", Duration(l.UptimeS)),
		fmt.Sprintf("  Contactor Cycles:   %d", l.ContactorCycles),
		fmt.Sprintf("  Loaded Cycles:      %d", l.ContactorCyclesLoaded),
		fmt.Sprintf("  Connector Cycles:   %d", l.ConnectorCycles),
		fmt.Sprintf("  Thermal Foldbacks:  %d", l.ThermalFoldbacks),
		fmt.Sprintf("  Alert Count:        %d", l.AlertCount),
		fmt.Sprintf("  Avg Startup Temp:   %.1f°C", l.AvgStartupTemp),
	}
}

func WifiStatus(w *wallconnector.WifiStatus) []string {
	return []string{
		"Tesla Wall Connector WiFi Status:",
		fmt.Sprintf("  SSID:            %s", DecodeSSID(w.WifiSSID)),
		fmt.Sprintf("  Connected:       %t", w.WifiConnected),
		fmt.Sprintf("  Signal Strength: %d%%", w.WifiSignalStrength),
		fmt.Sprintf("  RSSI:            %d dBm", w.WifiRSSI),
		fmt.Sprintf("  SNR:             %d dB", w.WifiSNR),
		fmt.Sprintf("  IP Address:      %s", w.WifiInfraIP),
		fmt.Sprintf("  Internet:        %t", w.Internet),
		fmt.Sprintf("  MAC Address:     %s", w.WifiMAC),
	}
}

func Vitals(v *wallconnector.VitalsSnapshot) []string {
	return []string{
		"Tesla Wall Connector Vitals:",
		fmt.Sprintf("  Vehicle Connected:  %t", v.VehicleConnected),
		fmt.Sprintf("  Contactor Closed:   %t", v.ContactorClosed),
		fmt.Sprintf("  EVSE State:         %d", v.EvseState),
		fmt.Sprintf("  Config Status:      %d", v.ConfigStatus),
		fmt.Sprintf("  Session Duration:   %s", Minutes(v.SessionS)),
		fmt.Sprintf("  Session Energy:     %.3f kWh", v.SessionEnergyWh/1000.0),
		fmt.Sprintf("  Vehicle Current:    %.1f A", v.VehicleCurrentA),
		fmt.Sprintf("  Grid Voltage:       %.1f V", v.GridV),
		fmt.Sprintf("  Grid Frequency:     %.1f Hz", v.GridHz),
		fmt.Sprintf("  Phase Currents:     A %.1f / B %.1f / C %.1f / N %.1f A",
			v.CurrentAA, v.CurrentBA, v.CurrentCA, v.CurrentNA),
		fmt.Sprintf("  Phase Voltages:     A %.1f / B %.1f / C %.1f V",
			v.VoltageAV, v.VoltageBV, v.VoltageCV),
		fmt.Sprintf("  Pilot High/Low:     %.1f V / %.1f V", v.PilotHighV, v.PilotLowV),
		fmt.Sprintf("  Proximity:          %.1f V", v.ProxV),
		fmt.Sprintf("  Relay Coil:         %.1f V", v.RelayCoilV),
		fmt.Sprintf("  Thermopile:         %d µV", v.InputThermopileUv),
		fmt.Sprintf("  PCBA Temp:          %.1f°C", v.PcbaTempC),
		fmt.Sprintf("  Handle Temp:        %.1f°C", v.HandleTempC),
		fmt.Sprintf("  MCU Temp:           %.1f°C", v.McuTempC),
		fmt.Sprintf("  Uptime:             %s", Duration(v.UptimeS)),
		fmt.Sprintf("  Active Alerts:      %s", alerts(v.CurrentAlerts)),
	}
}

// Duration decomposes a second count into days, hours and minutes,
// dropping leading zero units.
func Duration(seconds int64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// Minutes renders a session duration as whole minutes.
func Minutes(seconds int64) string {
	return fmt.Sprintf("%dm", seconds/60)
}

// DecodeSSID decodes the base64 SSID the device transmits. Anything
// that is not valid base64 or UTF-8 is returned untouched.
func DecodeSSID(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(raw) {
		return encoded
	}

	return string(raw)
}

func alerts(codes []int) string {
	if len(codes) == 0 {
		return "none"
	}

	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ", ")
}
