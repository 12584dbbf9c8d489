package gacha

import "time"

// templateCacheTTL bounds how stale the per-rarity template lists may be
// after admin tooling adds new templates.
const templateCacheTTL = 5 * time.Minute

// templateCacheSize is one slot per rarity tier.
const templateCacheSize = 8

// Ledger entry description format for pack purchases.
const packPurchaseDescription = "Opened %s pack"
