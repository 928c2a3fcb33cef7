package store

import (
	"sync"

	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/ports"
)

// ModalState — состояние единственного модального окна.
// Content и Title имеют смысл только при IsOpen.
type ModalState struct {
	IsOpen  bool
	Content ports.ViewHandle
	Title   string
}

// Modal — контроллер модального окна. Open поверх открытого окна меняет
// содержимое на месте, без видимого закрытия и переоткрытия — так форма
// заказа передаёт управление форме контактов.
type Modal struct {
	mu    sync.Mutex
	state ModalState
	bus   *events.Bus
}

func NewModal(bus *events.Bus) *Modal {
	return &Modal{bus: bus}
}

// Open — открыть окно или заменить содержимое открытого.
func (m *Modal) Open(content ports.ViewHandle, title string) {
	m.mu.Lock()
	m.state = ModalState{IsOpen: true, Content: content, Title: title}
	st := m.state
	m.mu.Unlock()

	m.publish(st)
}

// Close — закрыть окно и отбросить ссылку на содержимое.
// Повторное закрытие — no-op без события.
func (m *Modal) Close() {
	m.mu.Lock()
	if !m.state.IsOpen {
		m.mu.Unlock()
		return
	}
	m.state = ModalState{}
	st := m.state
	m.mu.Unlock()

	m.publish(st)
}

// State — текущее состояние окна.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen — окно открыто.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.IsOpen
}

func (m *Modal) publish(st ModalState) {
	m.bus.Publish(events.ModalChanged{
		IsOpen:  st.IsOpen,
		Content: st.Content,
		Title:   st.Title,
	})
}
