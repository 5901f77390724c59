package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"maintenance-dashboard-backend/config"
	"maintenance-dashboard-backend/internal/model"
	"maintenance-dashboard-backend/internal/tenant"
)

// Poller periodically scans the current enterprise's tickets and
// dispatches push alerts for urgent, overdue and newly opened ones.
// Each ticket is alerted at most once per category per process run.
type Poller struct {
	cfg   *config.NotifierConfig
	store *tenant.Store
	pool  *WorkerPool
	now   func() time.Time

	seenUrgent  map[int64]bool
	seenOverdue map[int64]bool
	seenOpen    map[int64]bool
	primed      bool
}

// NewPoller creates a poller bound to a tenant store and worker pool.
func NewPoller(cfg *config.NotifierConfig, store *tenant.Store, pool *WorkerPool) *Poller {
	return &Poller{
		cfg:         cfg,
		store:       store,
		pool:        pool,
		now:         time.Now,
		seenUrgent:  make(map[int64]bool),
		seenOverdue: make(map[int64]bool),
		seenOpen:    make(map[int64]bool),
	}
}

// Run starts the polling loop and blocks until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("Notification poller started with interval %v", p.cfg.Interval)
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Prime on the first pass so pre-existing tickets do not flood
	// subscribers at startup.
	p.Scan()

	for {
		select {
		case <-ticker.C:
			p.Scan()
		case <-ctx.Done():
			log.Println("Notification poller shutting down")
			return
		}
	}
}

// Scan inspects the current dataset once and dispatches alerts for
// conditions not seen before.
func (p *Poller) Scan() {
	data, err := p.store.Dataset()
	if err != nil {
		log.Printf("Poller: failed to read dataset: %v", err)
		return
	}

	now := p.now()
	for _, ticket := range data.Tickets {
		closed := ticket.Status == model.TicketResolved || ticket.Status == model.TicketClosed

		if !p.primed && !closed {
			p.seenUrgent[ticket.ID] = ticket.Priority == model.PriorityUrgent
			p.seenOverdue[ticket.ID] = isOverdue(ticket, now)
			p.seenOpen[ticket.ID] = true
			continue
		}

		if closed {
			continue
		}

		if !p.seenOpen[ticket.ID] {
			p.seenOpen[ticket.ID] = true
			p.pool.Dispatch(Alert{
				Title: "Nouveau ticket",
				Body:  fmt.Sprintf("%s: %s", ticket.TicketNumber, ticket.Title),
				Tag:   fmt.Sprintf("ticket-new-%d", ticket.ID),
			})
		}

		if ticket.Priority == model.PriorityUrgent && !p.seenUrgent[ticket.ID] {
			p.seenUrgent[ticket.ID] = true
			p.pool.Dispatch(Alert{
				Title: "Ticket urgent",
				Body:  fmt.Sprintf("%s: %s", ticket.TicketNumber, ticket.Title),
				Tag:   fmt.Sprintf("ticket-urgent-%d", ticket.ID),
			})
		}

		if isOverdue(ticket, now) && !p.seenOverdue[ticket.ID] {
			p.seenOverdue[ticket.ID] = true
			p.pool.Dispatch(Alert{
				Title: "Ticket en retard",
				Body:  fmt.Sprintf("Échéance dépassée: %s", ticket.TicketNumber),
				Tag:   fmt.Sprintf("ticket-overdue-%d", ticket.ID),
			})
		}
	}
	p.primed = true
}

func isOverdue(ticket model.Ticket, now time.Time) bool {
	return ticket.ExpectedDate != nil && ticket.ExpectedDate.Before(now)
}
