package storage

import (
	"context"
	"errors"
)

// Slots persistidos. Cada coleção é serializada inteira no seu slot a cada
// mutação — não há escrita incremental.
const (
	KeySession  = "printguard:session"
	KeyUsers    = "printguard:users"
	KeyClients  = "printguard:clients"
	KeyPrinters = "printguard:printers"
	KeyParts    = "printguard:parts"
	KeyOrders   = "printguard:orders"
)

// ErrKeyNotFound indica que o slot nunca foi gravado.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store é um armazenamento chave-valor durável com valores JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
