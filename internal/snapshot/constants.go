package snapshot

import "time"

// Store defaults
const (
	DefaultStoreSize = 10000
	DefaultStoreTTL  = 10 * time.Minute
)

// hexPrefix marks a hexadecimal uint256 encoding of a chain value
const hexPrefix = "0x"
