package deps

import (
	"time"
	"waterreminder/internal/config"
	dl "waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/messaging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/implementations/identity"
	"waterreminder/internal/implementations/logging"
	rcsgateway "waterreminder/internal/implementations/messaging"
	reminderstore "waterreminder/internal/implementations/reminder_store"
	tokencodec "waterreminder/internal/implementations/token_codec"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Now func() time.Time

	ReminderStore     reminder.Repository
	TokenCodec        reminder.TokenCodec
	IdentityGenerator reminder.IdentityGenerator
	MessageSender     messaging.Sender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}
	deps.initConfig()
	closeLogger := deps.initLogger()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.ReminderStore = reminderstore.NewInMemory()
	deps.IdentityGenerator = identity.NewUUID()
	deps.initTokenCodec()
	deps.initMessageSender()

	return deps, closeLogger
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initTokenCodec() {
	codec, err := tokencodec.NewRS256(
		deps.Config.PrivateKeyPEM(),
		deps.Config.ApplicationID,
		deps.Now,
	)
	if err != nil {
		panic("could not load the private signing key: " + err.Error())
	}
	deps.TokenCodec = codec
}

func (deps *Deps) initMessageSender() {
	gateway, err := rcsgateway.NewRCSGateway(
		deps.Logger,
		deps.Config.MessagesApiURL,
		deps.Config.ApplicationID,
		deps.Config.PrivateKeyPEM(),
		deps.Config.GatewayTimeout,
		deps.Now,
	)
	if err != nil {
		panic("could not create messaging gateway client: " + err.Error())
	}
	deps.MessageSender = gateway
}
