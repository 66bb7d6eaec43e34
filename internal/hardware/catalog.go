package hardware

import (
	"slices"
	"strings"
)

// Model is a catalog entry pairing an identifier with its marketing name.
type Model struct {
	Identifier string
	Name       string
}

var catalog = map[string]string{
	"iPhone1,1": "iPhone",
	"iPhone1,2": "iPhone 3G",
	"iPhone2,1": "iPhone 3GS",
	"iPhone3,1": "iPhone 4",
	"iPhone3,2": "iPhone 4",
	"iPhone3,3": "iPhone 4 (CDMA)",
	"iPhone4,1": "iPhone 4S",
	"iPhone5,1": "iPhone 5",
	"iPhone5,2": "iPhone 5",
	"iPhone5,3": "iPhone 5c",
	"iPhone5,4": "iPhone 5c",
	"iPhone6,1": "iPhone 5s",
	"iPhone6,2": "iPhone 5s",
	"iPhone7,1": "iPhone 6 Plus",
	"iPhone7,2": "iPhone 6",
	"iPhone8,1": "iPhone 6s",
	"iPhone8,2": "iPhone 6s Plus",
	"iPhone8,4": "iPhone SE",

	"iPod1,1": "iPod touch",
	"iPod2,1": "iPod touch (2nd generation)",
	"iPod3,1": "iPod touch (3rd generation)",
	"iPod4,1": "iPod touch (4th generation)",
	"iPod5,1": "iPod touch (5th generation)",
	"iPod7,1": "iPod touch (6th generation)",

	"iPad1,1": "iPad",
	"iPad2,1": "iPad 2",
	"iPad2,2": "iPad 2",
	"iPad2,3": "iPad 2",
	"iPad2,4": "iPad 2",
	"iPad2,5": "iPad mini",
	"iPad2,6": "iPad mini",
	"iPad2,7": "iPad mini",
	"iPad3,1": "iPad (3rd generation)",
	"iPad3,2": "iPad (3rd generation)",
	"iPad3,3": "iPad (3rd generation)",
	"iPad3,4": "iPad (4th generation)",
	"iPad3,5": "iPad (4th generation)",
	"iPad3,6": "iPad (4th generation)",
	"iPad4,1": "iPad Air",
	"iPad4,2": "iPad Air",
	"iPad4,4": "iPad mini 2",
	"iPad4,5": "iPad mini 2",
	"iPad5,3": "iPad Air 2",
	"iPad5,4": "iPad Air 2",
}

// Lookup returns the catalog entry for id.
func Lookup(id Identifier) (Model, bool) {
	if !id.Valid() {
		return Model{}, false
	}
	key := id.String()
	name, ok := catalog[key]
	if !ok {
		return Model{}, false
	}
	return Model{Identifier: key, Name: name}, true
}

// Catalog returns every known model ordered by family, then major, then minor.
func Catalog() []Model {
	models := make([]Model, 0, len(catalog))
	for key, name := range catalog {
		models = append(models, Model{Identifier: key, Name: name})
	}
	slices.SortFunc(models, func(a, b Model) int {
		pa, pb := Parse(a.Identifier), Parse(b.Identifier)
		if pa.Family != pb.Family {
			return int(pa.Family) - int(pb.Family)
		}
		if pa.Major != pb.Major {
			return pa.Major - pb.Major
		}
		if pa.Minor != pb.Minor {
			return pa.Minor - pb.Minor
		}
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return models
}
