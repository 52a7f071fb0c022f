// Package catalog holds the fixed set of institutions available for
// connection. The connection flow only synthesizes accounts for
// entries listed here.
package catalog

import "fmt"

// Region tells whether an institution holds domestic or offshore accounts.
type Region string

const (
	RegionBR     Region = "BR"
	RegionGlobal Region = "Global"
)

// Entry is one connectable institution.
type Entry struct {
	Name    string `json:"name"`
	LogoURI string `json:"logo_uri"`
	Region  Region `json:"region"`
}

// IsGlobal reports whether accounts at this institution are offshore.
func (e Entry) IsGlobal() bool { return e.Region == RegionGlobal }

// logoURI builds the logo lookup URI for an institution domain.
func logoURI(domain string) string {
	return fmt.Sprintf("https://unavatar.io/%s?fallback=false", domain)
}

// Entries is the connection catalog.
var Entries = []Entry{
	{Name: "XP Investimentos", LogoURI: logoURI("xp.com.br"), Region: RegionBR},
	{Name: "BTG Pactual", LogoURI: logoURI("btgpactual.com"), Region: RegionBR},
	{Name: "Banco Inter", LogoURI: logoURI("bancointer.com.br"), Region: RegionBR},
	{Name: "NuBank", LogoURI: logoURI("nubank.com.br"), Region: RegionBR},
	{Name: "Itaú", LogoURI: logoURI("itau.com.br"), Region: RegionBR},
	{Name: "Avenue", LogoURI: logoURI("avenue.us"), Region: RegionGlobal},
	{Name: "Nomad", LogoURI: logoURI("nomadglobal.com"), Region: RegionGlobal},
	{Name: "Binance", LogoURI: logoURI("binance.com"), Region: RegionGlobal},
	{Name: "Charles Schwab", LogoURI: logoURI("schwab.com"), Region: RegionGlobal},
	{Name: "Interactive Brokers", LogoURI: logoURI("interactivebrokers.com"), Region: RegionGlobal},
}

// Find returns the catalog entry with the given name.
func Find(name string) (Entry, bool) {
	for _, e := range Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
