package model

import "time"

// Machine represents a tracked piece of equipment. CategoryID and
// SubCategoryID are soft references: they may dangle after a category
// is deleted, and lookups must tolerate that.
type Machine struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Location      string            `json:"location"`
	SerialNumber  string            `json:"serialNumber"`
	CategoryID    int64             `json:"categoryId"`
	SubCategoryID int64             `json:"subCategoryId,omitempty"`
	CustomFields  map[string]string `json:"customFields,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Category is a top-level machine classification.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubCategory refines a Category. ParentID soft-references a Category.
type SubCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ParentID    int64  `json:"parentId"`
	Description string `json:"description"`
}
