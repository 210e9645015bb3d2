package portfolio

import (
	"strings"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/models"
)

// Repository exposes the wallet operations the admin pages invoke. Every
// mutating operation is a whole-document read-modify-write: load a fresh copy,
// mutate in memory, save. There is no partial persistence.
type Repository struct {
	store  *Store
	logger *common.Logger
}

// NewRepository creates a repository on top of the given store.
func NewRepository(store *Store, logger *common.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Document loads the current document for display.
func (r *Repository) Document() *models.Document {
	doc, _ := r.store.Load()
	return doc
}

// FindByID returns the wallet with the given id and its index, or
// ErrWalletNotFound.
func (r *Repository) FindByID(id int) (*models.Wallet, int, error) {
	doc, _ := r.store.Load()
	index, wallet := doc.WalletByID(id)
	if wallet == nil {
		return nil, -1, ErrWalletNotFound
	}
	return wallet, index, nil
}

// NextID returns the id the next created wallet would receive.
func (r *Repository) NextID() int {
	doc, _ := r.store.Load()
	return doc.NextWalletID()
}

// Create validates the composition, appends a new wallet with the next free
// id, optionally marks it active, and persists. Returns the created wallet.
func (r *Repository) Create(fields models.WalletFields, composition string, makeActive bool) (*models.Wallet, error) {
	assets, err := ValidateAssets(composition)
	if err != nil {
		return nil, err
	}

	doc, _ := r.store.Load()

	wallet := models.Wallet{
		ID:             doc.NextWalletID(),
		Name:           strings.TrimSpace(fields.Name),
		Capital:        strings.TrimSpace(fields.Capital),
		WinRate:        strings.TrimSpace(fields.WinRate),
		AnnualReturn:   strings.TrimSpace(fields.AnnualReturn),
		YearlyReturn:   strings.TrimSpace(fields.YearlyReturn),
		PortfolioChart: strings.TrimSpace(fields.PortfolioChart),
		SharpeChart:    strings.TrimSpace(fields.SharpeChart),
		Assets:         assets,
	}

	doc.Wallets = append(doc.Wallets, wallet)
	if makeActive {
		doc.ActiveWalletID = &wallet.ID
	}

	if err := r.store.Save(doc); err != nil {
		return nil, &PersistError{Err: err}
	}

	if r.logger != nil {
		r.logger.Info().Int("wallet_id", wallet.ID).Str("name", wallet.Name).Msg("wallet created")
	}
	return &wallet, nil
}

// Update validates the composition and replaces the wallet with the given id
// in place, preserving its id and position. Optionally marks it active.
func (r *Repository) Update(id int, fields models.WalletFields, composition string, makeActive bool) (*models.Wallet, error) {
	doc, _ := r.store.Load()

	index, existing := doc.WalletByID(id)
	if existing == nil {
		return nil, ErrWalletNotFound
	}

	assets, err := ValidateAssets(composition)
	if err != nil {
		return nil, err
	}

	doc.Wallets[index] = models.Wallet{
		ID:             id,
		Name:           strings.TrimSpace(fields.Name),
		Capital:        strings.TrimSpace(fields.Capital),
		WinRate:        strings.TrimSpace(fields.WinRate),
		AnnualReturn:   strings.TrimSpace(fields.AnnualReturn),
		YearlyReturn:   strings.TrimSpace(fields.YearlyReturn),
		PortfolioChart: strings.TrimSpace(fields.PortfolioChart),
		SharpeChart:    strings.TrimSpace(fields.SharpeChart),
		Assets:         assets,
	}

	if makeActive {
		doc.ActiveWalletID = &id
	}

	if err := r.store.Save(doc); err != nil {
		return nil, &PersistError{Err: err}
	}

	if r.logger != nil {
		r.logger.Info().Int("wallet_id", id).Msg("wallet updated")
	}
	return &doc.Wallets[index], nil
}

// Delete removes the wallet with the given id, shifting subsequent entries.
// If the removed wallet was the active one, the active pointer is cleared.
// Referenced image files are left alone. Returns the removed wallet.
func (r *Repository) Delete(id int) (*models.Wallet, error) {
	doc, _ := r.store.Load()

	index, existing := doc.WalletByID(id)
	if existing == nil {
		return nil, ErrWalletNotFound
	}

	removed := *existing
	doc.Wallets = append(doc.Wallets[:index], doc.Wallets[index+1:]...)

	if doc.IsActive(id) {
		doc.ActiveWalletID = nil
	}

	if err := r.store.Save(doc); err != nil {
		return nil, &PersistError{Err: err}
	}

	if r.logger != nil {
		r.logger.Info().Int("wallet_id", id).Str("name", removed.Name).Msg("wallet deleted")
	}
	return &removed, nil
}

// Move swaps the wallet with the given id with its neighbor in the given
// direction ("up" or "down"). A move at the boundary is a successful no-op
// and does not rewrite the file.
func (r *Repository) Move(id int, direction string) error {
	doc, _ := r.store.Load()

	index, existing := doc.WalletByID(id)
	if existing == nil {
		return ErrWalletNotFound
	}

	newIndex := index
	switch {
	case direction == "up" && index > 0:
		newIndex = index - 1
	case direction == "down" && index < len(doc.Wallets)-1:
		newIndex = index + 1
	}

	if newIndex == index {
		return nil
	}

	doc.Wallets[index], doc.Wallets[newIndex] = doc.Wallets[newIndex], doc.Wallets[index]

	if err := r.store.Save(doc); err != nil {
		return &PersistError{Err: err}
	}

	if r.logger != nil {
		r.logger.Info().Int("wallet_id", id).Str("direction", direction).Msg("wallet moved")
	}
	return nil
}

// Stats summarizes the document for the admin dashboard.
type Stats struct {
	Wallets  int
	FileSize int64
}

// Stats returns the wallet count and the size of the backing file.
func (r *Repository) Stats() Stats {
	doc, _ := r.store.Load()
	return Stats{
		Wallets:  len(doc.Wallets),
		FileSize: r.store.FileSize(),
	}
}
