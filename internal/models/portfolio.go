// Package models defines the portfolio document shapes shared across the
// portal. Field order matters: the JSON encoder emits struct fields in
// declaration order, and the published document keeps a stable key order.
package models

// Asset is a single allocation inside a wallet's composition.
type Asset struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Wallet is a named investment-strategy record with display stats, chart
// image references and an asset composition. The stat fields are free-text
// display strings ("$125,450", "42%"), entered as shown on the site.
type Wallet struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Capital        string  `json:"capital"`
	WinRate        string  `json:"winRate"`
	AnnualReturn   string  `json:"annualReturn"`
	YearlyReturn   string  `json:"yearlyReturn"`
	PortfolioChart string  `json:"portfolioChart"`
	SharpeChart    string  `json:"sharpeChart"`
	Assets         []Asset `json:"assets"`
}

// WalletFields carries the editable wallet fields from a form submission.
// The asset composition travels separately as its textual encoding.
type WalletFields struct {
	Name           string
	Capital        string
	WinRate        string
	AnnualReturn   string
	YearlyReturn   string
	PortfolioChart string
	SharpeChart    string
}

// Document is the whole portfolio document: an ordered wallet list plus the
// optional pointer to the default-selected wallet.
type Document struct {
	Wallets        []Wallet `json:"wallets"`
	ActiveWalletID *int     `json:"activeWalletId"`
}

// NewDocument returns an empty document with a non-nil wallet slice so it
// serializes as {"wallets": [], "activeWalletId": null}.
func NewDocument() *Document {
	return &Document{Wallets: []Wallet{}}
}

// WalletByID returns the wallet with the given id and its index, or (-1, nil).
func (d *Document) WalletByID(id int) (int, *Wallet) {
	for i := range d.Wallets {
		if d.Wallets[i].ID == id {
			return i, &d.Wallets[i]
		}
	}
	return -1, nil
}

// NextWalletID allocates the next wallet id: max(existing ids) + 1, or 1 for
// an empty collection.
func (d *Document) NextWalletID() int {
	maxID := 0
	for i := range d.Wallets {
		if d.Wallets[i].ID > maxID {
			maxID = d.Wallets[i].ID
		}
	}
	return maxID + 1
}

// IsActive reports whether the given wallet id is the active wallet.
func (d *Document) IsActive(id int) bool {
	return d.ActiveWalletID != nil && *d.ActiveWalletID == id
}

// Normalize replaces nil slices so the document always serializes with
// "wallets": [] and each wallet with "assets": [].
func (d *Document) Normalize() {
	if d.Wallets == nil {
		d.Wallets = []Wallet{}
	}
	for i := range d.Wallets {
		if d.Wallets[i].Assets == nil {
			d.Wallets[i].Assets = []Asset{}
		}
	}
}
