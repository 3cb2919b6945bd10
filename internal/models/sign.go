package models

import (
	"errors"
	"strings"
)

// Sign is one of the twelve zodiac signs the backend understands.
// The set is closed; every lookup against the reference table assumes it.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

var ErrUnknownSign = errors.New("unknown sign")

// AllSigns returns the signs in zodiac order.
func AllSigns() []Sign {
	return []Sign{
		Aries, Taurus, Gemini, Cancer, Leo, Virgo,
		Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
	}
}

// ParseSign normalizes user input into a Sign.
func ParseSign(s string) (Sign, error) {
	sign := Sign(strings.ToLower(strings.TrimSpace(s)))
	if !sign.Valid() {
		return "", ErrUnknownSign
	}
	return sign, nil
}

func (s Sign) Valid() bool {
	_, ok := signTable[s]
	return ok
}

// Title returns the display-cased sign name, e.g. "Aries".
func (s Sign) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Info returns display metadata for the sign. The second return is false
// only for values outside the closed set.
func (s Sign) Info() (SignInfo, bool) {
	info, ok := signTable[s]
	return info, ok
}

// SignInfo is static display metadata for a sign: symbol, element, accent
// color, date range, modality, ruling planet and the one-line trait shown
// on the profile screen.
type SignInfo struct {
	Symbol       string
	Element      string
	Emoji        string
	Color        string
	DateRange    string
	Modality     string
	RulingPlanet string
	Trait        string
}

var signTable = map[Sign]SignInfo{
	Aries:       {Symbol: "♈", Element: "Fire", Emoji: "🔥", Color: "#FF6B6B", DateRange: "Mar 21 – Apr 19", Modality: "Cardinal Fire", RulingPlanet: "Mars", Trait: "Bold & Impulsive"},
	Taurus:      {Symbol: "♉", Element: "Earth", Emoji: "🌿", Color: "#81C784", DateRange: "Apr 20 – May 20", Modality: "Fixed Earth", RulingPlanet: "Venus", Trait: "Stubborn & Sensual"},
	Gemini:      {Symbol: "♊", Element: "Air", Emoji: "💨", Color: "#FFD54F", DateRange: "May 21 – Jun 20", Modality: "Mutable Air", RulingPlanet: "Mercury", Trait: "Dual & Witty"},
	Cancer:      {Symbol: "♋", Element: "Water", Emoji: "🌊", Color: "#4FC3F7", DateRange: "Jun 21 – Jul 22", Modality: "Cardinal Water", RulingPlanet: "Moon", Trait: "Emotional & Nurturing"},
	Leo:         {Symbol: "♌", Element: "Fire", Emoji: "🦁", Color: "#FFB74D", DateRange: "Jul 23 – Aug 22", Modality: "Fixed Fire", RulingPlanet: "Sun", Trait: "Dramatic & Generous"},
	Virgo:       {Symbol: "♍", Element: "Earth", Emoji: "🌾", Color: "#AED581", DateRange: "Aug 23 – Sep 22", Modality: "Mutable Earth", RulingPlanet: "Mercury", Trait: "Perfectionist & Caring"},
	Libra:       {Symbol: "♎", Element: "Air", Emoji: "⚖️", Color: "#CE93D8", DateRange: "Sep 23 – Oct 22", Modality: "Cardinal Air", RulingPlanet: "Venus", Trait: "Charming & Indecisive"},
	Scorpio:     {Symbol: "♏", Element: "Water", Emoji: "🦂", Color: "#EF5350", DateRange: "Oct 23 – Nov 21", Modality: "Fixed Water", RulingPlanet: "Pluto", Trait: "Intense & Magnetic"},
	Sagittarius: {Symbol: "♐", Element: "Fire", Emoji: "🏹", Color: "#AB47BC", DateRange: "Nov 22 – Dec 21", Modality: "Mutable Fire", RulingPlanet: "Jupiter", Trait: "Free & Philosophical"},
	Capricorn:   {Symbol: "♑", Element: "Earth", Emoji: "🏔️", Color: "#78909C", DateRange: "Dec 22 – Jan 19", Modality: "Cardinal Earth", RulingPlanet: "Saturn", Trait: "Ambitious & Disciplined"},
	Aquarius:    {Symbol: "♒", Element: "Air", Emoji: "🫧", Color: "#26C6DA", DateRange: "Jan 20 – Feb 18", Modality: "Fixed Air", RulingPlanet: "Uranus", Trait: "Rebel & Visionary"},
	Pisces:      {Symbol: "♓", Element: "Water", Emoji: "🐟", Color: "#7E57C2", DateRange: "Feb 19 – Mar 20", Modality: "Mutable Water", RulingPlanet: "Neptune", Trait: "Dreamy & Intuitive"},
}
