package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/repository"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

// OrderHub pushes order status changes to subscribed clients so the tracking
// pages don't have to poll. One room per order id.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *repository.OrderRepository
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type StatusEvent struct {
	OrderID uint      `json:"orderId"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

func NewOrderHub(orders *repository.OrderRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// OrderStatusChanged implements services.StatusNotifier.
func (h *OrderHub) OrderStatusChanged(orderID uint, status string) {
	h.broadcast <- StatusEvent{OrderID: orderID, Status: status, At: time.Now()}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	orderID := uint(id)
	userID := utils.CurrentUserID(c)

	if _, err := h.orders.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	// Only the customer, the owning restaurant or the assigned driver may watch.
	ok, err := h.orders.IsViewer(orderID, userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "not your order")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive until the client goes away; the feed is
// one-directional.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
