// Package directory exposes the lookup and insert operations over the four
// record collections. It performs no field validation; pre-insertion checks
// live with the callers. "No credentials matched" is an absent result, never
// an error.
package directory

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/udyambridge/business-platform-go/models"
	"github.com/udyambridge/business-platform-go/store"
)

type Directory struct {
	store store.Store

	// mu serializes the read-append-write cycle of inserts. The platform is
	// single-client, but handlers run on multiple goroutines.
	mu sync.Mutex

	// now stamps volunteer and idea IDs; overridable in tests.
	now func() int64
}

func New(st store.Store) *Directory {
	return &Directory{
		store: st,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// ---------------- Investors ----------------

func (d *Directory) Investors() ([]models.Investor, error) {
	var investors []models.Investor
	if err := d.readList(store.SlotInvestors, &investors); err != nil {
		return nil, err
	}
	return investors, nil
}

func (d *Directory) AddInvestor(in models.Investor) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var investors []models.Investor
	if err := d.readList(store.SlotInvestors, &investors); err != nil {
		return err
	}
	return d.writeList(store.SlotInvestors, append(investors, in))
}

// AuthenticateInvestor scans the collection in insertion order and returns
// the first record matching both credentials exactly, or nil. Uniqueness is
// not enforced at insert time, so first-inserted wins on duplicates.
func (d *Directory) AuthenticateInvestor(username, password string) (*models.Investor, error) {
	investors, err := d.Investors()
	if err != nil {
		return nil, err
	}
	for i := range investors {
		if investors[i].Username == username && investors[i].Password == password {
			return &investors[i], nil
		}
	}
	return nil, nil
}

// ---------------- Management ----------------

func (d *Directory) Management() ([]models.ManagementAdmin, error) {
	var admins []models.ManagementAdmin
	if err := d.readList(store.SlotManagement, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (d *Directory) AddManagement(admin models.ManagementAdmin) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var admins []models.ManagementAdmin
	if err := d.readList(store.SlotManagement, &admins); err != nil {
		return err
	}
	return d.writeList(store.SlotManagement, append(admins, admin))
}

func (d *Directory) AuthenticateManagement(username, password string) (*models.ManagementAdmin, error) {
	admins, err := d.Management()
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Username == username && admins[i].Password == password {
			return &admins[i], nil
		}
	}
	return nil, nil
}

// ---------------- Volunteers ----------------

func (d *Directory) Volunteers() ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := d.readList(store.SlotVolunteers, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// AddVolunteer stamps the record's ID with the insertion time and appends it.
func (d *Directory) AddVolunteer(v models.Volunteer) (models.Volunteer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var volunteers []models.Volunteer
	if err := d.readList(store.SlotVolunteers, &volunteers); err != nil {
		return models.Volunteer{}, err
	}
	v.ID = d.now()
	if err := d.writeList(store.SlotVolunteers, append(volunteers, v)); err != nil {
		return models.Volunteer{}, err
	}
	return v, nil
}

// ---------------- Investment ideas ----------------

func (d *Directory) InvestmentIdeas() ([]models.InvestmentIdea, error) {
	var ideas []models.InvestmentIdea
	if err := d.readList(store.SlotIdeas, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// AddInvestmentIdea stamps the record's ID with the insertion time and
// appends it.
func (d *Directory) AddInvestmentIdea(idea models.InvestmentIdea) (models.InvestmentIdea, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var ideas []models.InvestmentIdea
	if err := d.readList(store.SlotIdeas, &ideas); err != nil {
		return models.InvestmentIdea{}, err
	}
	idea.ID = d.now()
	if err := d.writeList(store.SlotIdeas, append(ideas, idea)); err != nil {
		return models.InvestmentIdea{}, err
	}
	return idea, nil
}

// ---------------- helpers ----------------

func (d *Directory) readList(slot string, out any) error {
	data, err := d.store.ReadCollection(slot)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("directory: decode %s: %w", slot, err)
	}
	return nil
}

func (d *Directory) writeList(slot string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("directory: encode %s: %w", slot, err)
	}
	return d.store.WriteCollection(slot, data)
}
