package gfapi

import (
	"time"
)

// Listing represents a Gameflip marketplace listing.
type Listing struct {
	ID          string    `json:"id"                     yaml:"id"`
	Owner       string    `json:"owner,omitempty"        yaml:"owner,omitempty"`
	Name        string    `json:"name"                   yaml:"name"`
	Description string    `json:"description,omitempty"  yaml:"description,omitempty"`
	Category    string    `json:"category,omitempty"     yaml:"category,omitempty"`
	Platform    string    `json:"platform,omitempty"     yaml:"platform,omitempty"`
	UPC         string    `json:"upc,omitempty"          yaml:"upc,omitempty"`
	Price       int       `json:"price"                  yaml:"price"`
	Status      string    `json:"status,omitempty"       yaml:"status,omitempty"`
	Kind        string    `json:"kind,omitempty"         yaml:"kind,omitempty"`
	DigitalGood bool      `json:"digital,omitempty"      yaml:"digital,omitempty"`
	ShippingFee int       `json:"shipping_fee,omitempty" yaml:"shipping_fee,omitempty"`
	Tags        []string  `json:"tags,omitempty"         yaml:"tags,omitempty"`
	Created     time.Time `json:"created,omitempty"      yaml:"created,omitempty"`
	Updated     time.Time `json:"updated,omitempty"      yaml:"updated,omitempty"`
}

// ListingCreateRequest is the body for creating a listing. Listings start in
// draft status; price is in cents.
type ListingCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Platform    string   `json:"platform,omitempty"`
	UPC         string   `json:"upc,omitempty"`
	Price       int      `json:"price"`
	DigitalGood bool     `json:"digital"`
	ShippingFee int      `json:"shipping_fee,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// PatchOp is a single JSON-Patch operation as consumed by PATCH endpoints.
type PatchOp struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// Exchange represents an escrowed transaction between a buyer and a seller.
type Exchange struct {
	ID        string    `json:"id"                  yaml:"id"`
	ListingID string    `json:"listing_id"          yaml:"listing_id"`
	Buyer     string    `json:"buyer,omitempty"     yaml:"buyer,omitempty"`
	Seller    string    `json:"seller,omitempty"    yaml:"seller,omitempty"`
	Price     int       `json:"price"               yaml:"price"`
	Status    string    `json:"status,omitempty"    yaml:"status,omitempty"`
	Created   time.Time `json:"created,omitempty"   yaml:"created,omitempty"`
	Completed time.Time `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// Profile represents the authenticated account's public profile.
type Profile struct {
	Owner       string    `json:"owner"                  yaml:"owner"`
	DisplayName string    `json:"display_name"           yaml:"display_name"`
	About       string    `json:"about,omitempty"        yaml:"about,omitempty"`
	Rating      int       `json:"rating,omitempty"       yaml:"rating,omitempty"`
	Sold        int       `json:"sell,omitempty"         yaml:"sell,omitempty"`
	Bought      int       `json:"buy,omitempty"          yaml:"buy,omitempty"`
	Verified    bool      `json:"verified,omitempty"     yaml:"verified,omitempty"`
	Registered  time.Time `json:"register_date"          yaml:"register_date"`
}

// ProfileUpdateRequest is the body for replacing mutable profile fields.
type ProfileUpdateRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	About       string `json:"about,omitempty"`
}

// WalletEntry is one row of the account's wallet history.
type WalletEntry struct {
	ID      string    `json:"id"                yaml:"id"`
	Kind    string    `json:"kind"              yaml:"kind"`
	Amount  int       `json:"amount"            yaml:"amount"`
	Balance int       `json:"balance,omitempty" yaml:"balance,omitempty"`
	Created time.Time `json:"created,omitempty" yaml:"created,omitempty"`
}

// BulkCreateRequest starts a bulk Steam trade: the listed assets are pulled
// from the trade offer and turned into listings.
type BulkCreateRequest struct {
	TradeURL string   `json:"trade_url"`
	AssetIDs []string `json:"asset_ids,omitempty"`
	Price    int      `json:"price,omitempty"`
}

// BulkOrder represents the state of a bulk Steam trade.
type BulkOrder struct {
	ID       string    `json:"id"                 yaml:"id"`
	Status   string    `json:"status"             yaml:"status"`
	TradeURL string    `json:"trade_url,omitempty" yaml:"trade_url,omitempty"`
	Created  time.Time `json:"created,omitempty"  yaml:"created,omitempty"`
}

// InventoryAsset is a single asset in a Steam inventory page.
type InventoryAsset struct {
	AppID      int    `json:"appid"      yaml:"appid"`
	ContextID  string `json:"contextid"  yaml:"contextid"`
	AssetID    string `json:"assetid"    yaml:"assetid"`
	ClassID    string `json:"classid"    yaml:"classid"`
	InstanceID string `json:"instanceid" yaml:"instanceid"`
	Amount     string `json:"amount"     yaml:"amount"`
}

// InventoryDescription carries the display metadata for a class of assets.
type InventoryDescription struct {
	AppID      int    `json:"appid"       yaml:"appid"`
	ClassID    string `json:"classid"     yaml:"classid"`
	InstanceID string `json:"instanceid"  yaml:"instanceid"`
	Name       string `json:"market_name" yaml:"market_name"`
	Tradable   int    `json:"tradable"    yaml:"tradable"`
}

// InventoryPage is one page of a Steam inventory traversal. LastAssetID is
// the continuation cursor; it is empty on the final page.
type InventoryPage struct {
	Assets       []InventoryAsset       `json:"assets"                  yaml:"assets"`
	Descriptions []InventoryDescription `json:"descriptions,omitempty"  yaml:"descriptions,omitempty"`
	TotalCount   int                    `json:"total_inventory_count"   yaml:"total_inventory_count"`
	MoreItems    bool                   `json:"more_items"              yaml:"more_items"`
	LastAssetID  string                 `json:"last_assetid,omitempty"  yaml:"last_assetid,omitempty"`
}
