package services

import (
	"net/http"

	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/platform/config"
)

// ServiceCollaborators are the infrastructure services the core depends on:
// object storage, outbound mail, PDF rendering and the ABN register client.
type ServiceCollaborators struct {
	Storage     portssvc.FileStorageSvc
	EmailSender portssvc.EmailSenderSvc
	Renderer    portssvc.DocumentRendererSvc
	ABNLookup   portssvc.ABNLookupSvc
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collab ServiceCollaborators) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Client and business services come first since document services
	// depend on them for lazy creation and inline patches.
	container.Client = NewClientService(repos.ClientRepo, repos.InvoiceRepo)
	container.Business = NewBusinessService(repos.BusinessRepo)

	container.User = NewUserService(repos.UserRepo, collab.Storage)
	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token, collab.EmailSender)
	container.OAuth = NewOAuthService(cfg, repos.UserRepo, container.Token, http.DefaultClient)

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Client, container.Business, collab.Renderer, collab.Storage)
	container.Item = NewItemService(repos.InvoiceRepo)
	container.Quote = NewQuoteService(repos.QuoteRepo, repos.InvoiceRepo, container.Client, container.Business, collab.Renderer, collab.Storage)

	container.ABNLookup = collab.ABNLookup

	return container
}
