package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/storage"
)

// ErrNotFound é retornado por operações por id sem registro correspondente.
var ErrNotFound = errors.New("record not found")

// Store é o dono exclusivo das coleções persistidas. Toda mutação grava a
// coleção inteira de volta no slot antes de trocar o estado em memória, de
// modo que memória e armazenamento nunca divergem. O mutex serializa as
// mutações: uma de cada vez, sem visibilidade parcial.
type Store struct {
	kv storage.Store

	mu          sync.Mutex
	clients     []models.Client
	printers    []models.Printer
	parts       []models.Part
	orders      []models.ServiceOrder
	technicians []models.Technician
}

func New(ctx context.Context, kv storage.Store) (*Store, error) {
	s := &Store{
		kv: kv,
		// técnicos são referência fixa, sem slot próprio
		technicians: seedTechnicians(),
	}

	var err error
	if s.clients, err = loadSlot(ctx, kv, storage.KeyClients, seedClients()); err != nil {
		return nil, err
	}
	if s.printers, err = loadSlot(ctx, kv, storage.KeyPrinters, seedPrinters()); err != nil {
		return nil, err
	}
	if s.parts, err = loadSlot(ctx, kv, storage.KeyParts, seedParts()); err != nil {
		return nil, err
	}
	if s.orders, err = loadSlot(ctx, kv, storage.KeyOrders, seedOrders()); err != nil {
		return nil, err
	}

	return s, nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (s *Store) ListClients(_ context.Context) []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.clients)
}

func (s *Store) GetClientByID(_ context.Context, id string) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Client{}, ErrNotFound
}

// AddClient insere o cliente no topo da coleção (mais recentes primeiro).
func (s *Store) AddClient(ctx context.Context, c models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Client{c}, s.clients...)
	if err := saveSlot(ctx, s.kv, storage.KeyClients, next); err != nil {
		return err
	}
	s.clients = next
	return nil
}

// --------------------------------------------------
// Printers
// --------------------------------------------------

func (s *Store) ListPrinters(_ context.Context) []models.Printer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.printers)
}

func (s *Store) GetPrinterByID(_ context.Context, id string) (models.Printer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.printers {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Printer{}, ErrNotFound
}

func (s *Store) AddPrinter(ctx context.Context, p models.Printer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Printer{p}, s.printers...)
	if err := saveSlot(ctx, s.kv, storage.KeyPrinters, next); err != nil {
		return err
	}
	s.printers = next
	return nil
}

// --------------------------------------------------
// Parts
// --------------------------------------------------

func (s *Store) ListParts(_ context.Context) []models.Part {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.parts)
}

func (s *Store) GetPartByID(_ context.Context, id string) (models.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.parts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Part{}, ErrNotFound
}

func (s *Store) AddPart(ctx context.Context, p models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]models.Part{p}, s.parts...)
	if err := saveSlot(ctx, s.kv, storage.KeyParts, next); err != nil {
		return err
	}
	s.parts = next
	return nil
}

// UpdatePartQuantity grava a quantidade informada tal qual recebida; quem
// chama é responsável por limitar decrementos a zero.
func (s *Store) UpdatePartQuantity(ctx context.Context, id string, quantity int) (models.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.parts, func(p models.Part) bool { return p.ID == id })
	if idx < 0 {
		return models.Part{}, ErrNotFound
	}

	next := slices.Clone(s.parts)
	next[idx].Quantity = quantity

	if err := saveSlot(ctx, s.kv, storage.KeyParts, next); err != nil {
		return models.Part{}, err
	}
	s.parts = next
	return next[idx], nil
}

// --------------------------------------------------
// Technicians
// --------------------------------------------------

func (s *Store) ListTechnicians(_ context.Context) []models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.technicians)
}

func (s *Store) GetTechnicianByID(_ context.Context, id string) (models.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.technicians {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Technician{}, ErrNotFound
}

// --------------------------------------------------
// Service Orders
// --------------------------------------------------

func (s *Store) ListOrders(_ context.Context) ([]models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders), nil
}

func (s *Store) GetOrderByID(_ context.Context, id string) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.ServiceOrder{}, ErrNotFound
}

// CreateOrder monta a OS com o builder e a insere no topo, tudo sob a mesma
// seção crítica em que a coleção foi lida. O builder enxerga o conjunto
// vigente no instante da inserção, de modo que numeração derivada dele é
// única mesmo sob chamadas concorrentes.
func (s *Store) CreateOrder(ctx context.Context, build func(existing []models.ServiceOrder) models.ServiceOrder) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := build(slices.Clone(s.orders))

	next := append([]models.ServiceOrder{o}, s.orders...)
	if err := saveSlot(ctx, s.kv, storage.KeyOrders, next); err != nil {
		return models.ServiceOrder{}, err
	}
	s.orders = next
	return o, nil
}

// ApplyOrder localiza a OS, aplica a mutação e grava, sem soltar o mutex
// entre a leitura e a escrita; atualizações concorrentes não se perdem.
func (s *Store) ApplyOrder(ctx context.Context, id string, apply func(o *models.ServiceOrder)) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.orders, func(cur models.ServiceOrder) bool { return cur.ID == id })
	if idx < 0 {
		return models.ServiceOrder{}, ErrNotFound
	}

	next := slices.Clone(s.orders)
	apply(&next[idx])
	next[idx].ID = id

	if err := saveSlot(ctx, s.kv, storage.KeyOrders, next); err != nil {
		return models.ServiceOrder{}, err
	}
	s.orders = next
	return next[idx], nil
}

// DeleteOrder remove a OS em definitivo; não há soft-delete nesta camada.
func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.orders, func(o models.ServiceOrder) bool { return o.ID == id })
	if idx < 0 {
		return ErrNotFound
	}

	next := slices.Delete(slices.Clone(s.orders), idx, idx+1)

	if err := saveSlot(ctx, s.kv, storage.KeyOrders, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}
