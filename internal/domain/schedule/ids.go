package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tokens otimistas gerados pelo cliente para blocos ainda não salvos.
// Nunca podem ser confundidos com IDs do servidor — o prefixo "temp-"
// marca o registro como pendente.

const clientRefPrefix = "temp-"

func NewClientRef(now time.Time) string {
	return fmt.Sprintf("%s%d-%s", clientRefPrefix, now.UnixMilli(), uuid.NewString()[:8])
}

// IsClientRef informa se o identificador é um token pendente (client-only)
// e não uma chave do servidor.
func IsClientRef(id string) bool {
	return strings.HasPrefix(id, clientRefPrefix)
}
