package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"
	"pedido/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fixed replies that never go through the completion engine.
const (
	replyAudioUnreadable = "Desculpe, não consegui entender seu áudio. 😕 Pode escrever sua mensagem?"
	replySlowEngine      = "Desculpe, estou um pouco lento agora. ⏳ Pode mandar sua mensagem de novo em instantes?"
	replyEngineFailure   = "Desculpe, nosso atendente virtual está indisponível no momento (falha no serviço de IA). Tente novamente mais tarde."
	replyStoreFailure    = "Desculpe, tive um problema ao acessar nosso sistema (banco de dados). Tente novamente em instantes."
	replyEmptyAnswer     = "Desculpe, não consegui montar uma resposta agora. Pode repetir?"

	defaultSystemPrompt = "Você é o atendente virtual do restaurante. Responda em português do Brasil, de forma " +
		"cordial e objetiva. Use as ferramentas para consultar o cardápio, cadastrar o cliente, montar e fechar " +
		"pedidos e consultar status. Nunca invente produtos, preços ou taxas."

	webIdentityPrefix = "web:"
)

var (
	errCompletionTimeout = errors.New("completion engine timed out")
	errEngineFailure     = errors.New("completion engine failure")
	errStoreFailure      = errors.New("conversation store failure")
)

// conversationService implements the ConversationUsecase interface.
// Each message is at most two engine calls: a tool round, then a final round without tools.
type conversationService struct {
	settingsRepo repository.SettingsRepository
	chatRepo     repository.ChatMessageRepository
	engine       service.CompletionEngine
	transcriber  service.Transcriber
	gateway      service.MessagingGateway
	customers    usecase.CustomerUsecase
	checkout     usecase.CheckoutUsecase
	menu         usecase.MenuUsecase
	products     *productResolver
	phones       util.PhoneFormat
	cfg          *config.ConversationConfig
	now          func() time.Time
	logger       *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	ChatRepo     repository.ChatMessageRepository
	ProductRepo  repository.ProductRepository
	Engine       service.CompletionEngine
	Transcriber  service.Transcriber
	Gateway      service.MessagingGateway
	Customers    usecase.CustomerUsecase
	Checkout     usecase.CheckoutUsecase
	Menu         usecase.MenuUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		settingsRepo: params.SettingsRepo,
		chatRepo:     params.ChatRepo,
		engine:       params.Engine,
		transcriber:  params.Transcriber,
		gateway:      params.Gateway,
		customers:    params.Customers,
		checkout:     params.Checkout,
		menu:         params.Menu,
		products:     newProductResolver(params.ProductRepo),
		phones:       phoneFormat(params.Config),
		cfg:          params.Config.Conversation,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// turn is the state of one inbound message cycle
type turn struct {
	msg      *usecase.InboundMessage
	settings *entity.Settings
	identity string
	phone    string // canonical phone, empty for anonymous web sessions
	cart     []usecase.CartLine
}

func (srv *conversationService) HandleMessage(ctx context.Context, msg *usecase.InboundMessage) (*usecase.ConversationReply, error) {
	if !msg.Channel.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown channel " + string(msg.Channel))
	}

	settings, err := srv.settingsRepo.GetSettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return &usecase.ConversationReply{Skipped: true}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load settings")
	}
	if !settings.Active || settings.CompletionAPIKey == "" {
		srv.log(ctx).Debug("Assistant inactive, message ignored", slog.String("channel", string(msg.Channel)))

		return &usecase.ConversationReply{Skipped: true}, nil
	}

	t := &turn{msg: msg, settings: settings}
	if err := srv.resolveIdentity(t); err != nil {
		return nil, err
	}
	logger := srv.log(ctx).With(slog.String("channel", string(msg.Channel)), slog.String("identity", t.identity))

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		text, err = srv.transcribe(ctx, t)
		if err != nil {
			logger.Warn("Audio message could not be transcribed", slog.Any("error", err))

			return srv.deliver(ctx, t, replyAudioUnreadable)
		}
	}

	reply, err := srv.converse(ctx, t, text)
	switch {
	case errors.Is(err, errCompletionTimeout):
		logger.Warn("Completion engine timed out", slog.Duration("timeout", srv.cfg.CompletionTimeout))
		reply = replySlowEngine
	case errors.Is(err, errEngineFailure):
		logger.Error("Completion engine failed", slog.Any("error", err))
		reply = replyEngineFailure
	case err != nil:
		logger.Error("Conversation failed", slog.Any("error", err))
		reply = replyStoreFailure
	}

	return srv.deliver(ctx, t, reply)
}

// resolveIdentity trusts WhatsApp addresses and falls back to the session key on web
func (srv *conversationService) resolveIdentity(t *turn) error {
	switch t.msg.Channel {
	case entity.ChannelWhatsApp:
		jid := t.msg.RemoteJID
		if jid == "" {
			jid = t.msg.Phone
		}
		if i := strings.IndexAny(jid, "@:"); i >= 0 {
			jid = jid[:i]
		}
		t.phone = srv.phones.Normalize(jid)
		if t.phone == "" {
			return domainerrors.ErrInvalidPhone.WithDetails("empty sender address")
		}
		t.identity = t.phone
	default:
		t.phone = srv.phones.Normalize(t.msg.Phone)
		switch {
		case t.phone != "":
			t.identity = t.phone
		case strings.TrimSpace(t.msg.SessionID) != "":
			t.identity = webIdentityPrefix + strings.TrimSpace(t.msg.SessionID)
		default:
			return domainerrors.ErrValidationFailed.WithDetails("session id or phone required")
		}
	}

	return nil
}

func (srv *conversationService) transcribe(ctx context.Context, t *turn) (string, error) {
	audio := t.msg.Audio
	if audio == nil || len(audio.Data) == 0 {
		return "", errors.New("no text and no readable audio")
	}

	creds := entity.CompletionCredentials{APIKey: t.settings.CompletionAPIKey, Model: srv.cfg.TranscriptionModel}
	text, err := srv.transcriber.Transcribe(ctx, creds, audio)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty transcription")
	}

	return strings.TrimSpace(text), nil
}

// converse runs the persist, context, tool round, final round and persist steps
func (srv *conversationService) converse(ctx context.Context, t *turn, text string) (string, error) {
	if err := srv.appendMessage(ctx, t.identity, entity.ChatRoleUser, text); err != nil {
		return "", err
	}

	history, err := srv.chatRepo.FindRecentMessages(ctx, t.identity, srv.cfg.HistoryLimit)
	if err != nil {
		return "", errors.Wrap(errStoreFailure, err.Error())
	}
	slices.Reverse(history)

	messages := make([]service.CompletionMessage, 0, len(history)+4)
	for _, m := range history {
		role := service.CompletionRoleUser
		if m.Role == entity.ChatRoleAssistant {
			role = service.CompletionRoleAssistant
		}
		messages = append(messages, service.CompletionMessage{Role: role, Content: m.Content})
	}

	req := &service.CompletionRequest{
		Credentials: srv.credentials(t.settings),
		System:      srv.systemPrompt(t),
		Messages:    messages,
		Tools:       toolDefinitions(t.msg.Channel),
	}

	first, err := srv.complete(ctx, req)
	if err != nil {
		return "", err
	}

	answer := first.Text
	if len(first.ToolCalls) > 0 {
		req.Messages = append(req.Messages, service.CompletionMessage{
			Role:      service.CompletionRoleAssistant,
			Content:   first.Text,
			ToolCalls: first.ToolCalls,
		})
		for _, raw := range first.ToolCalls {
			call := parseToolCall(raw)
			req.Messages = append(req.Messages, service.CompletionMessage{
				Role:       service.CompletionRoleToolResult,
				Content:    srv.runTool(ctx, t, call),
				ToolCallID: call.callID(),
				ToolName:   raw.Name,
			})
		}
		req.Tools = nil

		final, err := srv.complete(ctx, req)
		if err != nil {
			return "", err
		}
		answer = final.Text
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = replyEmptyAnswer
	}

	if err := srv.appendMessage(ctx, t.identity, entity.ChatRoleAssistant, answer); err != nil {
		srv.log(ctx).Warn("Failed to store assistant reply", slog.Any("error", err))
	}

	return answer, nil
}

// complete races the engine call against the configured timeout
func (srv *conversationService) complete(ctx context.Context, req *service.CompletionRequest) (*service.CompletionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.cfg.CompletionTimeout)
	defer cancel()

	type result struct {
		resp *service.CompletionResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := srv.engine.Complete(ctx, req)
		done <- result{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return nil, errCompletionTimeout
			}

			return nil, errors.Wrap(errEngineFailure, r.err.Error())
		}
		if r.resp == nil {
			return nil, errors.Wrap(errEngineFailure, "empty response")
		}

		return r.resp, nil
	case <-ctx.Done():
		return nil, errCompletionTimeout
	}
}

func (srv *conversationService) credentials(settings *entity.Settings) entity.CompletionCredentials {
	creds := settings.Completion()
	if creds.Model == "" {
		creds.Model = srv.cfg.DefaultModel
	}

	return creds
}

func (srv *conversationService) systemPrompt(t *turn) string {
	var b strings.Builder

	prompt := strings.TrimSpace(t.settings.SystemPrompt)
	if prompt == "" {
		prompt = defaultSystemPrompt
	}
	b.WriteString(prompt)
	b.WriteString("\n\n")

	now := srv.now()
	b.WriteString(BusinessHoursStatus(now, t.settings.OpeningHours))
	b.WriteString("\nAgora: " + now.In(scheduleLocation(t.settings.OpeningHours.Timezone)).Format("Monday 02/01/2006 15:04") + ".\n")

	switch t.msg.Channel {
	case entity.ChannelWhatsApp:
		b.WriteString("Canal: WhatsApp. O telefone do cliente é " + t.phone + "; use-o no cadastro e nos pedidos, não peça outro.\n")
	default:
		b.WriteString("Canal: site. Use add_to_cart para colocar itens no carrinho do cliente.\n")
		if t.phone != "" {
			b.WriteString("Telefone informado pelo cliente: " + t.phone + ".\n")
		} else {
			b.WriteString("Peça o telefone do cliente antes de cadastrar ou fechar um pedido.\n")
		}
	}

	return b.String()
}

func (srv *conversationService) appendMessage(ctx context.Context, identity string, role entity.ChatRole, content string) error {
	err := srv.chatRepo.AppendMessage(ctx, &entity.ChatMessage{
		ID:        uuid.New(),
		Phone:     identity,
		Role:      role,
		Content:   content,
		CreatedAt: srv.now(),
	})
	if err != nil {
		return errors.Wrap(errStoreFailure, err.Error())
	}

	return nil
}

// deliver returns the reply on web and also sends it through the gateway on WhatsApp
func (srv *conversationService) deliver(ctx context.Context, t *turn, text string) (*usecase.ConversationReply, error) {
	reply := &usecase.ConversationReply{Identity: t.identity, Reply: text, Cart: t.cart}
	if t.msg.Channel != entity.ChannelWhatsApp {
		return reply, nil
	}

	if !t.settings.HasGateway() {
		srv.log(ctx).Warn("Messaging gateway not configured, WhatsApp reply dropped")

		return reply, nil
	}
	if err := srv.gateway.SendText(ctx, t.settings.Gateway(), t.phone, text); err != nil {
		return reply, errors.Wrap(err, "send whatsapp reply")
	}

	return reply, nil
}

// runTool executes one call and returns its JSON result. Business errors become
// {"error": code, "message": ...} so the engine can phrase them for the customer.
func (srv *conversationService) runTool(ctx context.Context, t *turn, call toolCall) string {
	var (
		result any
		err    error
	)

	switch c := call.(type) {
	case getMenuCall:
		result, err = srv.menuResult(ctx)
	case registerCustomerCall:
		input := c.input
		input.Phone = srv.trustedPhone(t, input.Phone)
		result, err = srv.customers.RegisterCustomer(ctx, &input)
	case createOrderCall:
		input := c.input
		input.CustomerPhone = srv.trustedPhone(t, input.CustomerPhone)
		result, err = srv.checkout.CreateOrder(ctx, &input)
	case addToCartCall:
		result, err = srv.cartResult(ctx, t, c.items)
	case checkOrderStatusCall:
		result, err = srv.orderStatusResult(ctx, c.ref)
	case unknownToolCall:
		srv.log(ctx).Warn("Engine requested an unusable tool call", slog.String("tool", c.name), slog.String("reason", c.reason))
		result = map[string]string{"error": "INVALID_TOOL_CALL", "message": c.reason}
	}

	if err != nil {
		srv.log(ctx).Info("Tool call returned an error",
			slog.String("tool_call_id", call.callID()),
			slog.Any("error", err),
		)
		info := domainerrors.ToErrorInfo(err)
		result = map[string]any{"error": info.Code, "message": info.Message, "details": info.Details}
	}

	payload, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		return `{"error":"INTERNAL_ERROR"}`
	}

	return string(payload)
}

// trustedPhone forces the sender's phone on WhatsApp; on web it takes the engine's value and
// falls back to the phone of the session.
func (srv *conversationService) trustedPhone(t *turn, supplied string) string {
	if t.msg.Channel == entity.ChannelWhatsApp || strings.TrimSpace(supplied) == "" {
		return t.phone
	}

	return supplied
}

type menuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
}

type menuCategoryView struct {
	Name     string         `json:"category"`
	Products []menuItemView `json:"products"`
}

func (srv *conversationService) menuResult(ctx context.Context) (any, error) {
	menu, err := srv.menu.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	view := make([]menuCategoryView, 0, len(menu.Categories))
	for _, category := range menu.Categories {
		items := make([]menuItemView, 0, len(category.Products))
		for _, p := range category.Products {
			items = append(items, menuItemView{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price})
		}
		view = append(view, menuCategoryView{Name: category.Name, Products: items})
	}

	return map[string]any{"menu": view}, nil
}

func (srv *conversationService) cartResult(ctx context.Context, t *turn, lines []usecase.OrderLineInput) (any, error) {
	if t.msg.Channel != entity.ChannelWeb {
		return nil, domainerrors.ErrForbidden.WithDetails("add_to_cart is only available on the web channel")
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrMissingOrderField.WithDetails("items")
	}

	items, _, notFound, err := srv.products.ResolveItems(ctx, lines)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve cart items")
	}

	added := make([]usecase.CartLine, 0, len(items))
	for _, item := range items {
		added = append(added, usecase.CartLine{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Modifiers: item.Modifiers,
		})
	}
	t.cart = append(t.cart, added...)

	return map[string]any{"added": added, "not_found": notFound}, nil
}

type orderStatusView struct {
	OrderNumber  string              `json:"order_number"`
	Status       entity.OrderStatus  `json:"status"`
	StatusLabel  string              `json:"status_label"`
	DeliveryType entity.DeliveryType `json:"delivery_type"`
	Total        float64             `json:"total"`
	Items        []string            `json:"items"`
}

func (srv *conversationService) orderStatusResult(ctx context.Context, ref string) (any, error) {
	order, err := srv.checkout.FindOrder(ctx, ref)
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, item.ProductName)
	}

	return orderStatusView{
		OrderNumber:  order.DisplayNumber(),
		Status:       order.Status,
		StatusLabel:  order.Status.Label(),
		DeliveryType: order.DeliveryType,
		Total:        order.Total,
		Items:        items,
	}, nil
}
