package receipts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
)

// Limite herdado do painel: comprovantes de até 5MB, PDF/JPG/PNG.
const MaxFileSize = 5 * 1024 * 1024

var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Registry guarda os comprovantes anexados em memória, referenciados por
// URL transitória. Nada é persistido: reiniciar o servidor perde os
// anexos, mesmo comportamento das object URLs da versão web.
type Registry struct {
	mu    sync.RWMutex
	files map[string]File
}

func NewRegistry() *Registry {
	return &Registry{files: map[string]File{}}
}

// Add valida e registra o arquivo, devolvendo a URL transitória que vai
// gravada na transação.
func (r *Registry) Add(name string, data []byte) (string, error) {
	if len(data) > MaxFileSize {
		return "", httperr.ErrBusiness("file_too_large")
	}

	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return "", httperr.ErrBusiness("invalid_file_type")
	}
	contentType, ok := allowedExtensions[strings.ToLower(name[dot:])]
	if !ok {
		return "", httperr.ErrBusiness("invalid_file_type")
	}

	id := uuid.NewString()

	r.mu.Lock()
	r.files[id] = File{Name: name, ContentType: contentType, Data: data}
	r.mu.Unlock()

	return fmt.Sprintf("/files/receipts/%s", id), nil
}

func (r *Registry) Get(id string) (File, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.files[id]
	return f, ok
}
