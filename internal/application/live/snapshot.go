package live

import (
	"sync"
	"time"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// Snapshot foto versionada de clientes conectados. Version 0 = todavía sin datos.
// Stopped indica que el feed se detuvo y la lista vacía no refleja al router.
type Snapshot struct {
	Version   uint64
	UpdatedAt time.Time
	Clients   []entity.ConnectedClient
	Stopped   bool
}

// SnapshotStore guarda la última foto (gana la más reciente) y avisa a los suscriptores.
type SnapshotStore struct {
	mu      sync.RWMutex
	current Snapshot
	nextID  int
	subs    map[int]chan Snapshot
	now     func() time.Time
}

// NewSnapshotStore crea un store vacío.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{subs: make(map[int]chan Snapshot), now: time.Now}
}

// Current devuelve la última foto.
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set reemplaza la foto, incrementa la versión y la entrega a cada suscriptor.
func (s *SnapshotStore) Set(clients []entity.ConnectedClient) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{
		Version:   s.current.Version + 1,
		UpdatedAt: s.now(),
		Clients:   clients,
	}
	s.broadcast()
	return s.current
}

// Stop vacía la foto y la marca detenida hasta el próximo Set.
func (s *SnapshotStore) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{Version: s.current.Version + 1, Stopped: true}
	s.broadcast()
}

// Subscribe devuelve un canal con la foto actual y cada cambio posterior.
// Un suscriptor lento solo pierde fotos intermedias. cancel cierra el canal.
func (s *SnapshotStore) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	ch <- s.current
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// broadcast se llama con s.mu tomado.
func (s *SnapshotStore) broadcast() {
	for _, ch := range s.subs {
		select {
		case <-ch: // descarta la pendiente
		default:
		}
		ch <- s.current
	}
}
