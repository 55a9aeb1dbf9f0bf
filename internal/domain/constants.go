package domain

// Name matching keywords. Matching is case-insensitive substring.
var (
	// TransferBucketKeywords pick the bucket that receives transfers and purchases
	TransferBucketKeywords = []string{"moch", "malet", "backpack", "case"}

	// StorageBucketKeywords mark buckets that display sub-categories and items
	StorageBucketKeywords = []string{"moch", "malet", "porta", "backpack", "case", "trunk"}

	// TransferCategoryKeywords pick a category meant to receive transfers
	TransferCategoryKeywords = []string{"transfer"}

	// WeaponCategoryKeywords pick a category meant to hold purchased weapons
	WeaponCategoryKeywords = []string{"arma", "weapon"}
)

// Names of categories created on demand
const (
	TransferCategoryName = "Transferidos"
	WeaponCategoryName   = "Armas"
)

// Bucket a category without a parent is placed into during reconstruction
const DefaultParentFixed = "Mochila"

// DefaultFixedCategories is applied to inventories stored without fixed categories
var DefaultFixedCategories = []string{"Status", "Mochila", "Dinheiro", "Anotações"}

// Weapon creation defaults
const (
	DefaultWeaponDamage      = 0
	DefaultWeaponMagCapacity = 10
	DefaultWeaponAmmoType    = "9mm"
	DefaultWeaponPrice       = 1000
)

// RandomizeCap bounds a randomized stand when the catalog is larger than it
const RandomizeCap = 12

// DefaultItemQty is used when an item is created with a non-positive quantity
const DefaultItemQty = 1
