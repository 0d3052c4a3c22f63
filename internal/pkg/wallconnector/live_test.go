package wallconnector

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const vitalsBody = `{"contactor_closed":true,"vehicle_connected":true,` +
	`"session_s":725,"grid_v":243.5,"grid_hz":49.8,"vehicle_current_a":15.6,` +
	`"currentA_a":15.6,"currentB_a":0.2,"currentC_a":0.0,"currentN_a":0.2,` +
	`"voltageA_v":238.1,"voltageB_v":0.0,"voltageC_v":0.0,"relay_coil_v":11.8,` +
	`"pcba_temp_c":13.1,"handle_temp_c":8.8,"mcu_temp_c":16.4,"uptime_s":104100,` +
	`"input_thermopile_uv":-138,"prox_v":0.0,"pilot_high_v":11.9,"pilot_low_v":4.2,` +
	`"session_energy_wh":1234.0,"config_status":5,"evse_state":11,"current_alerts":[3,7]}`

// newTestDevice serves one endpoint with a fixed body
func newTestDevice(t *testing.T, endpoint, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/1/"+endpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func addrOf(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

func TestVitals(t *testing.T) {
	server := newTestDevice(t, "vitals", vitalsBody)
	defer server.Close()

	v, raw, err := NewLiveClient(addrOf(server)).Vitals(context.Background())
	if err != nil {
		t.Fatalf("Vitals() error = %v", err)
	}

	if !v.ContactorClosed || !v.VehicleConnected {
		t.Error("connection flags not decoded")
	}
	if v.UptimeS != 104100 {
		t.Errorf("UptimeS = %d, want 104100", v.UptimeS)
	}
	if v.EvseState != 11 || v.ConfigStatus != 5 {
		t.Errorf("state codes = %d/%d, want 11/5", v.EvseState, v.ConfigStatus)
	}
	if len(v.CurrentAlerts) != 2 || v.CurrentAlerts[0] != 3 || v.CurrentAlerts[1] != 7 {
		t.Errorf("CurrentAlerts = %v, want [3 7]", v.CurrentAlerts)
	}

	// the undecoded body is handed back for the response log
	if !bytes.Equal(raw, []byte(vitalsBody)) {
		t.Errorf("raw body = %s, want the served body", raw)
	}
}

func TestVersion(t *testing.T) {
	body := `{"firmware_version":"22.41.2","git_branch":"master",` +
		`"part_number":"1529455-02-D","serial_number":"PGT21302001234",` +
		`"web_service":"1.1"}`
	server := newTestDevice(t, "version", body)
	defer server.Close()

	v, _, err := NewLiveClient(addrOf(server)).Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}

	if v.FirmwareVersion != "22.41.2" {
		t.Errorf("FirmwareVersion = %s, want 22.41.2", v.FirmwareVersion)
	}
	if v.SerialNumber != "PGT21302001234" {
		t.Errorf("SerialNumber = %s, want PGT21302001234", v.SerialNumber)
	}
}

func TestLifetime(t *testing.T) {
	body := `{"contactor_cycles":1213,"contactor_cycles_loaded":900,` +
		`"alert_count":5,"thermal_foldbacks":0,"avg_startup_temp":18.3,` +
		`"charge_starts":812,"energy_wh":4315600,"connector_cycles":440,` +
		`"uptime_s":4147200,"charging_time_s":1382400}`
	server := newTestDevice(t, "lifetime", body)
	defer server.Close()

	l, _, err := NewLiveClient(addrOf(server)).Lifetime(context.Background())
	if err != nil {
		t.Fatalf("Lifetime() error = %v", err)
	}

	if l.EnergyWh != 4315600 {
		t.Errorf("EnergyWh = %d, want 4315600", l.EnergyWh)
	}
	if l.ChargeStarts != 812 {
		t.Errorf("ChargeStarts = %d, want 812", l.ChargeStarts)
	}
}

func TestWifiStatus(t *testing.T) {
	body := `{"wifi_ssid":"TXlOZXR3b3Jr","wifi_signal_strength":64,` +
		`"wifi_rssi":-58,"wifi_snr":34,"wifi_connected":true,` +
		`"wifi_infra_ip":"192.168.1.77","internet":true,` +
		`"wifi_mac":"98:ED:5C:AA:BB:CC"}`
	server := newTestDevice(t, "wifi_status", body)
	defer server.Close()

	w, _, err := NewLiveClient(addrOf(server)).WifiStatus(context.Background())
	if err != nil {
		t.Fatalf("WifiStatus() error = %v", err)
	}

	// decoding the SSID is the renderer's job, not the client's
	if w.WifiSSID != "TXlOZXR3b3Jr" {
		t.Errorf("WifiSSID = %s, want the encoded form", w.WifiSSID)
	}
	if w.WifiRSSI != -58 {
		t.Errorf("WifiRSSI = %d, want -58", w.WifiRSSI)
	}
}

func TestDeviceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := NewLiveClient(addrOf(server)).Vitals(context.Background())

	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("error = %v, want *DeviceError", err)
	}
	if devErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", devErr.StatusCode)
	}
}

func TestDecodeError(t *testing.T) {
	server := newTestDevice(t, "vitals", `{"contactor_closed": "not-a-bool"`)
	defer server.Close()

	v, _, err := NewLiveClient(addrOf(server)).Vitals(context.Background())

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
	if v != nil {
		t.Error("a decode failure must not yield a record")
	}
}

func TestTransportError(t *testing.T) {
	server := newTestDevice(t, "vitals", vitalsBody)
	addr := addrOf(server)
	server.Close()

	_, _, err := NewLiveClient(addr).Vitals(context.Background())

	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
}
