package area

// Area is one broadcast area: a prefecture with its broader region.
type Area struct {
	ID         string
	Prefecture string
	Region     string
}

// Broadcast area table, JP1 through JP47, following the prefecture code
// order used by the guide provider.
var areas = []Area{
	{"JP1", "Hokkaido", "Hokkaido"},
	{"JP2", "Aomori", "Tohoku"},
	{"JP3", "Iwate", "Tohoku"},
	{"JP4", "Miyagi", "Tohoku"},
	{"JP5", "Akita", "Tohoku"},
	{"JP6", "Yamagata", "Tohoku"},
	{"JP7", "Fukushima", "Tohoku"},
	{"JP8", "Ibaraki", "Kanto"},
	{"JP9", "Tochigi", "Kanto"},
	{"JP10", "Gunma", "Kanto"},
	{"JP11", "Saitama", "Kanto"},
	{"JP12", "Chiba", "Kanto"},
	{"JP13", "Tokyo", "Kanto"},
	{"JP14", "Kanagawa", "Kanto"},
	{"JP15", "Niigata", "Chubu"},
	{"JP16", "Toyama", "Chubu"},
	{"JP17", "Ishikawa", "Chubu"},
	{"JP18", "Fukui", "Chubu"},
	{"JP19", "Yamanashi", "Chubu"},
	{"JP20", "Nagano", "Chubu"},
	{"JP21", "Gifu", "Chubu"},
	{"JP22", "Shizuoka", "Chubu"},
	{"JP23", "Aichi", "Chubu"},
	{"JP24", "Mie", "Kinki"},
	{"JP25", "Shiga", "Kinki"},
	{"JP26", "Kyoto", "Kinki"},
	{"JP27", "Osaka", "Kinki"},
	{"JP28", "Hyogo", "Kinki"},
	{"JP29", "Nara", "Kinki"},
	{"JP30", "Wakayama", "Kinki"},
	{"JP31", "Tottori", "Chugoku"},
	{"JP32", "Shimane", "Chugoku"},
	{"JP33", "Okayama", "Chugoku"},
	{"JP34", "Hiroshima", "Chugoku"},
	{"JP35", "Yamaguchi", "Chugoku"},
	{"JP36", "Tokushima", "Shikoku"},
	{"JP37", "Kagawa", "Shikoku"},
	{"JP38", "Ehime", "Shikoku"},
	{"JP39", "Kochi", "Shikoku"},
	{"JP40", "Fukuoka", "Kyushu"},
	{"JP41", "Saga", "Kyushu"},
	{"JP42", "Nagasaki", "Kyushu"},
	{"JP43", "Kumamoto", "Kyushu"},
	{"JP44", "Oita", "Kyushu"},
	{"JP45", "Miyazaki", "Kyushu"},
	{"JP46", "Kagoshima", "Kyushu"},
	{"JP47", "Okinawa", "Kyushu"},
}

var byID = func() map[string]Area {
	m := make(map[string]Area, len(areas))
	for _, a := range areas {
		m[a.ID] = a
	}
	return m
}()

// Lookup returns the area for an id like "JP13", and whether it exists.
func Lookup(id string) (Area, bool) {
	a, ok := byID[id]
	return a, ok
}

// IsValid reports whether id names a known broadcast area.
func IsValid(id string) bool {
	_, ok := byID[id]
	return ok
}

// All returns every area in prefecture-code order.
func All() []Area {
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// InRegion returns the areas belonging to one region, in order.
func InRegion(region string) []Area {
	var out []Area
	for _, a := range areas {
		if a.Region == region {
			out = append(out, a)
		}
	}
	return out
}
