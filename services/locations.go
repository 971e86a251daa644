package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Static Turkish reference data. Loaded once at startup from the fixture
// files produced by the out-of-band fetch script and never mutated after.

type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type District struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
}

type Neighbourhood struct {
	Name         string `json:"name"`
	DistrictCode string `json:"districtCode"`
	ProvinceCode string `json:"provinceCode"`
}

type LocationService struct {
	provinces      []Province
	districts      []District
	neighbourhoods []Neighbourhood
}

// Location is the process-wide instance, loaded in main.
var Location = &LocationService{}

// Load reads the three fixture files and sorts each collection with Turkish
// collation up front; lookups then only filter, which preserves the order.
// Missing files leave their collection empty rather than failing startup.
func (s *LocationService) Load(dir string) error {
	if err := loadFixture(filepath.Join(dir, "provinces.json"), &s.provinces); err != nil {
		return err
	}
	if err := loadFixture(filepath.Join(dir, "districts.json"), &s.districts); err != nil {
		return err
	}
	if err := loadFixture(filepath.Join(dir, "neighbourhoods.json"), &s.neighbourhoods); err != nil {
		return err
	}

	c := collate.New(language.Turkish)
	sort.SliceStable(s.provinces, func(i, j int) bool {
		return c.CompareString(s.provinces[i].Name, s.provinces[j].Name) < 0
	})
	sort.SliceStable(s.districts, func(i, j int) bool {
		return c.CompareString(s.districts[i].Name, s.districts[j].Name) < 0
	})
	sort.SliceStable(s.neighbourhoods, func(i, j int) bool {
		return c.CompareString(s.neighbourhoods[i].Name, s.neighbourhoods[j].Name) < 0
	})
	return nil
}

func loadFixture(path string, dst interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Provinces returns all provinces, alphabetically.
func (s *LocationService) Provinces() []Province {
	return s.provinces
}

// Districts returns the districts of one province; empty when no province
// code is given.
func (s *LocationService) Districts(provinceCode string) []District {
	result := []District{}
	if provinceCode == "" {
		return result
	}
	for _, d := range s.districts {
		if d.ProvinceCode == provinceCode {
			result = append(result, d)
		}
	}
	return result
}

// Neighbourhoods returns the neighbourhoods under a province+district pair;
// empty unless both codes are supplied.
func (s *LocationService) Neighbourhoods(provinceCode, districtCode string) []Neighbourhood {
	result := []Neighbourhood{}
	if provinceCode == "" || districtCode == "" {
		return result
	}
	for _, n := range s.neighbourhoods {
		if n.ProvinceCode == provinceCode && n.DistrictCode == districtCode {
			result = append(result, n)
		}
	}
	return result
}
