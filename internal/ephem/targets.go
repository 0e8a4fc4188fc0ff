package ephem

import (
	"fmt"
	"strings"
)

// Body identifies a solar-system body. The zero value is no body.
type Body int

const (
	Sun Body = iota + 1
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// BodyInfo contains naming information for a body.
type BodyInfo struct {
	Body    Body
	Name    string   // display name
	Code    string   // short code for tables
	NAIFID  int      // NAIF SPICE ID
	Aliases []string // other accepted names
}

// Bodies is the canonical list of supported bodies.
var Bodies = []BodyInfo{
	{Body: Sun, Name: "Sun", Code: "SUN", NAIFID: 10, Aliases: []string{"Sol"}},
	{Body: Moon, Name: "Moon", Code: "MOON", NAIFID: 301, Aliases: []string{"Luna"}},
	{Body: Mercury, Name: "Mercury", Code: "MER", NAIFID: 199},
	{Body: Venus, Name: "Venus", Code: "VEN", NAIFID: 299},
	{Body: Mars, Name: "Mars", Code: "MAR", NAIFID: 499},
	{Body: Jupiter, Name: "Jupiter", Code: "JUP", NAIFID: 599},
	{Body: Saturn, Name: "Saturn", Code: "SAT", NAIFID: 699},
	{Body: Uranus, Name: "Uranus", Code: "URA", NAIFID: 799},
	{Body: Neptune, Name: "Neptune", Code: "NEP", NAIFID: 899},
}

// BodiesByName maps names, codes and aliases (lowercase) to body info.
var BodiesByName = func() map[string]BodyInfo {
	m := make(map[string]BodyInfo, len(Bodies)*3)
	for _, b := range Bodies {
		m[normalizeName(b.Name)] = b
		m[normalizeName(b.Code)] = b
		for _, alias := range b.Aliases {
			m[normalizeName(alias)] = b
		}
	}
	return m
}()

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// String returns the body's display name.
func (b Body) String() string {
	for _, info := range Bodies {
		if info.Body == b {
			return info.Name
		}
	}
	return "unknown"
}

// MarshalText encodes the body by name.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a body name, code or alias.
func (b *Body) UnmarshalText(text []byte) error {
	v, ok := ParseBody(string(text))
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownBody, text)
	}
	*b = v
	return nil
}

// ParseBody returns the body for a name, code or alias (case-insensitive).
func ParseBody(name string) (Body, bool) {
	info, ok := BodiesByName[normalizeName(name)]
	return info.Body, ok
}

// BodyByNAIF returns the body for a NAIF ID.
func BodyByNAIF(id int) (Body, bool) {
	for _, info := range Bodies {
		if info.NAIFID == id {
			return info.Body, true
		}
	}
	return 0, false
}
