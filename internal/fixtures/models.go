package fixtures

import "github.com/osse101/Stashkeeper_Go/internal/domain"

// File is the top-level layout of a seed file
type File struct {
	Users       []domain.User   `yaml:"users"`
	Inventories []Inventory     `yaml:"inventories"`
	Stands      []Stand         `yaml:"stands"`
	Weapons     []domain.Weapon `yaml:"weapons"`
}

// Inventory describes one inventory. Categories are keyed by fixed category name.
type Inventory struct {
	ID         string                `yaml:"id"`
	Name       string                `yaml:"name"`
	Owner      string                `yaml:"owner"`
	Type       string                `yaml:"type"`
	Wallpaper  string                `yaml:"wallpaper"`
	Money      int                   `yaml:"money"`
	Fixed      []string              `yaml:"fixed"`
	Categories map[string][]Category `yaml:"categories"`
	Status     string                `yaml:"status"`
	Notes      string                `yaml:"notes"`
}

// Category is a custom category with its items
type Category struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Item is a seeded item. Weapon is set for weapon items.
type Item struct {
	Name   string                 `yaml:"name"`
	Qty    int                    `yaml:"qty"`
	Desc   string                 `yaml:"desc"`
	Weapon *domain.WeaponMetadata `yaml:"weapon"`
}

// Stand is a seeded shop stand
type Stand struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Slots   int      `yaml:"slots"`
	Weapons []string `yaml:"weapons"`
}
