package authenticating

import (
	"sync"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const subscriberBuffer = 16

// Notifier distribui eventos de sessão para todos os inscritos. Um inscrito
// lento perde eventos em vez de travar quem publica.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[int]chan domain.SessionEvent
	nextID      int
}

func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[int]chan domain.SessionEvent),
	}
}

// Subscribe devolve o canal de eventos e a função que cancela a inscrição,
// fechando o canal. Chamar a função mais de uma vez não tem efeito.
func (n *Notifier) Subscribe() (<-chan domain.SessionEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan domain.SessionEvent, subscriberBuffer)
	n.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subscribers, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

func (n *Notifier) Publish(event domain.SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// subscriberCount retorna o número de inscritos ativos
func (n *Notifier) subscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}
