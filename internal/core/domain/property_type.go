package domain

import "fmt"

// PropertyType is the listing category.
type PropertyType string

const (
	TypeHouse              PropertyType = "house"
	TypeApartment          PropertyType = "apartment"
	TypeStudio             PropertyType = "studio"
	TypeVilla              PropertyType = "villa"
	TypeRoom               PropertyType = "room"
	TypeFurnishedHouse     PropertyType = "furnished_house"
	TypeFurnishedApartment PropertyType = "furnished_apartment"
	TypeFurnishedStudio    PropertyType = "furnished_studio"
	TypeFurnishedVilla     PropertyType = "furnished_villa"
	TypeFurnishedRoom      PropertyType = "furnished_room"
	TypeLand               PropertyType = "land"
)

// DictionaryItem pairs a system value with the label shown to users.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}

// PropertyTypes lists every category with its French label, in display order.
var PropertyTypes = []DictionaryItem{
	{SystemName: string(TypeHouse), DisplayName: "Maison"},
	{SystemName: string(TypeApartment), DisplayName: "Appartement"},
	{SystemName: string(TypeStudio), DisplayName: "Studio"},
	{SystemName: string(TypeVilla), DisplayName: "Villa"},
	{SystemName: string(TypeRoom), DisplayName: "Chambre"},
	{SystemName: string(TypeFurnishedHouse), DisplayName: "Maison meublée"},
	{SystemName: string(TypeFurnishedApartment), DisplayName: "Appartement meublé"},
	{SystemName: string(TypeFurnishedStudio), DisplayName: "Studio meublé"},
	{SystemName: string(TypeFurnishedVilla), DisplayName: "Villa meublée"},
	{SystemName: string(TypeFurnishedRoom), DisplayName: "Chambre meublée"},
	{SystemName: string(TypeLand), DisplayName: "Terrain"},
}

// ParsePropertyType returns the category matching s exactly.
func ParsePropertyType(s string) (PropertyType, error) {
	for _, item := range PropertyTypes {
		if item.SystemName == s {
			return PropertyType(s), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPropertyType, s)
}

// IsValid reports whether t is a known category.
func (t PropertyType) IsValid() bool {
	_, err := ParsePropertyType(string(t))
	return err == nil
}

// Label returns the display label, or the raw value for an unknown category.
func (t PropertyType) Label() string {
	for _, item := range PropertyTypes {
		if item.SystemName == string(t) {
			return item.DisplayName
		}
	}
	return string(t)
}

// IsLand reports whether the category is a plot of land.
func (t PropertyType) IsLand() bool {
	return t == TypeLand
}
