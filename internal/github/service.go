package github

import (
	"context"
	"log"

	"reposcout/internal/eventbus"
)

// Service bridges search-request events to the HTTP client. It subscribes
// on construction; the request runs off the bus dispatcher so the UI loop
// never blocks, and the outcome re-enters the system as a completion or
// failure event in arrival order.
type Service struct {
	bus    eventbus.EventBus
	client *Client
}

// NewService creates a search service subscribed to the bus.
func NewService(bus eventbus.EventBus, client *Client) *Service {
	s := &Service{bus: bus, client: client}
	bus.Subscribe(eventbus.EventSearchRequested, s.handleSearchRequested)
	return s
}

func (s *Service) handleSearchRequested(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.SearchRequestedEvent)
	if !ok {
		return
	}

	go func() {
		results, err := s.client.Search(context.Background(), event.Query)
		if err != nil {
			log.Printf("Search failed: %v", err)
			s.bus.Publish(eventbus.SearchFailedEvent{Message: err.Error()})
			return
		}
		log.Printf("Search completed with %d results", len(results))
		s.bus.Publish(eventbus.SearchCompletedEvent{Results: results})
	}()
}
