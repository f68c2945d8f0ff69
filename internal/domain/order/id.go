package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/printguard/printguard-api/internal/models"
)

// IDPattern é o formato das OS: OS-<ano>-<sequência de 3+ dígitos>
var IDPattern = regexp.MustCompile(`^OS-\d{4}-\d{3,}$`)

// NextID deriva o próximo número sequencial do ano a partir das OS
// existentes. A sequência reinicia a cada ano; excluir uma OS nunca libera
// o número dela.
func NextID(existing []models.ServiceOrder, year int) string {
	prefix := fmt.Sprintf("OS-%d-", year)

	maxSeq := 0
	for _, o := range existing {
		raw, ok := strings.CutPrefix(o.ID, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > maxSeq {
			maxSeq = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}
