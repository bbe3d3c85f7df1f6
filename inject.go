package main

import (
	"github.com/Kotlang/opsGo/appconfig"
	"github.com/Kotlang/opsGo/extensions"
	"github.com/Kotlang/opsGo/restclient"
	"github.com/Kotlang/opsGo/service"
)

type Inject struct {
	Config *appconfig.AppConfig
	Client *restclient.Client

	Leads     *restclient.LeadRepository
	Users     *restclient.UserRepository
	Companies *restclient.CompanyRepository
	Pos       *restclient.PoRepository
	Locations *restclient.LocationRepository
	Calls     *restclient.CallRepository
	Events    *restclient.EventRepository

	EventClient *extensions.EventClient
	Uploader    *extensions.CloudinaryClient

	LeadService     *service.LeadService
	BuyerService    *service.BuyerService
	CompanyService  *service.CompanyService
	PoService       *service.PoService
	LocationService *service.LocationService
	MediaService    *service.MediaService
	ToolsService    *service.ToolsService
}

func NewInject(config *appconfig.AppConfig) *Inject {
	inj := &Inject{Config: config}
	inj.Client = restclient.NewClient(config.ApiUrl)

	inj.Leads = restclient.NewLeadRepository(inj.Client)
	inj.Users = restclient.NewUserRepository(inj.Client)
	inj.Companies = restclient.NewCompanyRepository(inj.Client)
	inj.Pos = restclient.NewPoRepository(inj.Client)
	inj.Locations = restclient.NewLocationRepository(inj.Client)
	inj.Calls = restclient.NewCallRepository(inj.Client)
	inj.Events = restclient.NewEventRepository(inj.Client)

	inj.EventClient = extensions.NewEventClient(inj.Events)
	inj.Uploader = extensions.NewCloudinaryClient(config.CloudinaryCloudName, config.CloudinaryUploadPreset)

	inj.LeadService = service.ProvideLeadService(inj.Leads, inj.Users, inj.EventClient)
	inj.BuyerService = service.ProvideBuyerService(inj.Users)
	inj.CompanyService = service.ProvideCompanyService(inj.Companies, inj.Calls, inj.Leads)
	inj.PoService = service.ProvidePoService(inj.Pos)
	inj.LocationService = service.ProvideLocationService(inj.Locations, inj.Users)
	inj.MediaService = service.ProvideMediaService(inj.Uploader)
	inj.ToolsService = service.ProvideToolsService(inj.EventClient)

	return inj
}
