package partner

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if req.RUT != "" {
		parsed, err := valueobject.ParseRUT(req.RUT)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_RUT", "Client RUT is not valid: "+req.RUT)
		}
		exists, err := s.clientRepo.ExistsByRUT(ctx, parsed.String())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this RUT already exists")
		}
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	client, err := partner.NewClient(req.BusinessName, req.RUT, req.Address, req.Commune, createdBy)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Email != "" || req.Phone != "" {
		if err := client.SetContact(req.ContactName, req.Email, req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Activity != "" {
		if err := client.SetActivity(req.Activity); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByRUT retrieves a client by its tax identifier. The input is
// normalized before lookup, so any accepted RUT spelling resolves to the
// same client.
func (s *ClientService) GetByRUT(ctx context.Context, rut string) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByRUT(ctx, rut)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// ResolveOrCreateInput carries the data used to resolve a client by RUT,
// creating it when absent and allowed.
type ResolveOrCreateInput struct {
	RUT          string
	BusinessName string
	Address      string
	Commune      string
	Phone        string
	AllowCreate  bool
	ActingUser   *uuid.UUID
}

// ResolveOrCreate finds the client owning the given RUT. When no client
// exists and AllowCreate is set, a new client is created from the input
// fields; otherwise the lookup failure is returned. Resolution is
// deterministic: the same RUT always yields the same client while it
// exists.
func (s *ClientService) ResolveOrCreate(ctx context.Context, input ResolveOrCreateInput) (*ClientResponse, bool, error) {
	parsed, err := valueobject.ParseRUT(input.RUT)
	if err != nil {
		return nil, false, shared.NewDomainError("INVALID_RUT", "Client RUT is not valid: "+input.RUT)
	}
	normalized := parsed.String()

	client, err := s.clientRepo.FindByRUT(ctx, normalized)
	if err == nil {
		response := ToClientResponse(client)
		return &response, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	if !input.AllowCreate {
		// Declined creation for an unknown RUT is a validation failure on
		// the request, not a lookup miss: the caller must either reference
		// an existing client or opt into creating one.
		return nil, false, shared.NewDomainError("INVALID_CLIENT",
			"No client registered with RUT "+normalized+" and creation was not requested")
	}

	createdBy := uuid.Nil
	if input.ActingUser != nil {
		createdBy = *input.ActingUser
	}

	created, err := partner.NewClient(input.BusinessName, normalized, input.Address, input.Commune, createdBy)
	if err != nil {
		return nil, false, err
	}
	if input.Phone != "" {
		if err := created.SetContact("", "", input.Phone); err != nil {
			return nil, false, err
		}
	}

	if err := s.clientRepo.Save(ctx, created); err != nil {
		return nil, false, err
	}

	response := ToClientResponse(created)
	return &response, true, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) (*shared.Paginated[ClientResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "business_name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Commune != "" {
		domainFilter.Filters["commune"] = filter.Commune
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToClientResponses(clients), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	updatedBy := uuid.Nil
	if req.UpdatedBy != nil {
		updatedBy = *req.UpdatedBy
	}

	if req.BusinessName != nil || req.Address != nil || req.Commune != nil {
		businessName := client.BusinessName
		address := client.Address
		commune := client.Commune

		if req.BusinessName != nil {
			businessName = *req.BusinessName
		}
		if req.Address != nil {
			address = *req.Address
		}
		if req.Commune != nil {
			commune = *req.Commune
		}

		if err := client.Update(businessName, address, commune, updatedBy); err != nil {
			return nil, err
		}
	}

	if req.RUT != nil && *req.RUT != client.RUT {
		if *req.RUT != "" {
			parsed, err := valueobject.ParseRUT(*req.RUT)
			if err != nil {
				return nil, shared.NewDomainError("INVALID_RUT", "Client RUT is not valid: "+*req.RUT)
			}
			if normalized := parsed.String(); normalized != client.RUT {
				exists, err := s.clientRepo.ExistsByRUT(ctx, normalized)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this RUT already exists")
				}
			}
		}
		if err := client.SetRUT(*req.RUT); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Email != nil || req.Phone != nil {
		contactName := client.ContactName
		email := client.Email
		phone := client.Phone

		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}

		if err := client.SetContact(contactName, email, phone); err != nil {
			return nil, err
		}
	}

	if req.Activity != nil {
		if err := client.SetActivity(*req.Activity); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete deletes a client. Clients referenced by notes cannot be deleted.
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}

	noteCount, err := s.clientRepo.CountNotes(ctx, clientID)
	if err != nil {
		return err
	}
	if noteCount > 0 {
		return shared.ErrReferencedByNotes
	}

	return s.clientRepo.Delete(ctx, clientID)
}
