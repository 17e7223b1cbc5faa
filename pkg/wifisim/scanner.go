// pkg/wifisim/scanner.go

// Package wifisim simulates a wireless site survey. There is no radio, no
// packet capture and no privileged interface access: the scanner returns a
// fixed fleet of fictional networks with per-scan signal jitter so the
// presentation layers have realistic material to render. Every scan is
// labeled as simulated.
package wifisim

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SimulationNote marks scan output as fabricated.
const SimulationNote = "simulated survey — no radio hardware was accessed"

// Risk grades for a network's security posture.
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	case RiskCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the risk grade as its display string in exports.
func (r Risk) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (r Risk) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Network is one observed (fictional) access point.
type Network struct {
	SSID     string `json:"ssid"`
	BSSID    string `json:"bssid"`
	Channel  int    `json:"channel"`
	Signal   int    `json:"signal"` // percent
	Security string `json:"security"`
	Risk     Risk   `json:"risk"`
}

// Survey is the result of one simulated scan.
type Survey struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	ScannedAt time.Time `json:"scanned_at" yaml:"scanned_at"`
	Networks  []Network `json:"networks" yaml:"networks"`
	Note      string    `json:"note" yaml:"note"`
}

// fleet is the fictional neighborhood. Security strings deliberately cover
// the whole grading table.
var fleet = []Network{
	{SSID: "Neo-Corp WiFi", BSSID: "00:11:22:33:44:55", Channel: 6, Signal: 92, Security: "WPA3-Enterprise"},
	{SSID: "The Matrix", BSSID: "AA:BB:CC:DD:EE:FF", Channel: 11, Signal: 88, Security: "WPA2-PSK"},
	{SSID: "Zion Network", BSSID: "11:22:33:44:55:66", Channel: 36, Signal: 76, Security: "WPA2-PSK"},
	{SSID: "Architect VPN", BSSID: "77:88:99:AA:BB:CC", Channel: 149, Signal: 65, Security: "WPA3-PSK"},
	{SSID: "CoffeeShop_Free", BSSID: "DE:AD:BE:EF:00:01", Channel: 1, Signal: 58, Security: "OPEN"},
	{SSID: "Oracle-Guest", BSSID: "DE:AD:BE:EF:00:02", Channel: 3, Signal: 44, Security: "WPA-PSK"},
	{SSID: "NEB-2000-Legacy", BSSID: "CA:FE:BA:BE:00:03", Channel: 9, Signal: 31, Security: "WEP"},
	{SSID: "Trainman Hotspot", BSSID: "CA:FE:BA:BE:00:04", Channel: 40, Signal: 27, Security: "WPA2-PSK"},
}

// Scanner produces simulated surveys. The jitter source is deliberately
// math/rand: scan output is scenery, not a secret.
type Scanner struct {
	rng *rand.Rand
}

// NewScanner seeds the jitter source from the clock.
func NewScanner() *Scanner {
	return &Scanner{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Scan returns the fleet with jittered signal strength, strongest first.
func (s *Scanner) Scan() Survey {
	networks := make([]Network, len(fleet))
	copy(networks, fleet)
	for i := range networks {
		networks[i].Signal = clampPercent(networks[i].Signal + s.rng.Intn(11) - 5)
		networks[i].Risk = GradeRisk(networks[i].Security)
	}
	for i := 1; i < len(networks); i++ {
		for j := i; j > 0 && networks[j].Signal > networks[j-1].Signal; j-- {
			networks[j], networks[j-1] = networks[j-1], networks[j]
		}
	}
	return Survey{
		ID:        uuid.New(),
		ScannedAt: time.Now().UTC(),
		Networks:  networks,
		Note:      SimulationNote,
	}
}

// GradeRisk maps a security descriptor onto a risk grade: WEP is trivially
// crackable, open networks expose everything, first-generation WPA is
// attackable, WPA2/WPA3 pass.
func GradeRisk(security string) Risk {
	sec := strings.ToUpper(security)
	switch {
	case strings.Contains(sec, "WEP"):
		return RiskCritical
	case strings.Contains(sec, "OPEN") || strings.Contains(sec, "NONE") || sec == "":
		return RiskHigh
	case strings.Contains(sec, "WPA") && !strings.Contains(sec, "WPA2") && !strings.Contains(sec, "WPA3"):
		return RiskMedium
	default:
		return RiskLow
	}
}

// Assessment returns advice text for one network.
func Assessment(n Network) string {
	switch n.Risk {
	case RiskCritical:
		return "WEP encryption is easily cracked; upgrade to WPA2/WPA3 immediately"
	case RiskHigh:
		return "open network with no encryption; enable WPA2/WPA3"
	case RiskMedium:
		return "first-generation WPA is vulnerable; upgrade to WPA2 or WPA3"
	default:
		return "modern encryption (WPA2/WPA3) in use"
	}
}

func clampPercent(v int) int {
	if v < 1 {
		return 1
	}
	if v > 99 {
		return 99
	}
	return v
}
