package normalize

// Log messages for tree reconstruction
const (
	LogMsgOrphanCategory    = "Dropping category with missing inventory"
	LogMsgOrphanBucket      = "Dropping category with unknown fixed category"
	LogMsgOrphanItem        = "Dropping item with missing category"
	LogMsgOrphanStandWeapon = "Dropping stand assignment with missing stand or weapon"
	LogMsgDefaultFixed      = "Applying default fixed categories"
	LogMsgBuilt             = "State rebuilt from rows"
)

// FixedIDFmt derives a stable fixed-category id for inventories stored without any
const FixedIDFmt = "%s-fixed-%d"
