package impl

import (
	"bytes"
	"encoding/json"
	"strconv"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"

	"github.com/pkg/errors"
)

// Tool names exposed to the completion engine.
const (
	toolGetMenu          = "get_menu"
	toolRegisterCustomer = "register_customer"
	toolCreateOrder      = "create_order"
	toolAddToCart        = "add_to_cart"
	toolCheckOrderStatus = "check_order_status"
)

// toolCall is a parsed engine tool request. The set of implementations is closed.
type toolCall interface {
	callID() string
}

type getMenuCall struct {
	id string
}

type registerCustomerCall struct {
	id    string
	input usecase.RegisterCustomerInput
}

type createOrderCall struct {
	id    string
	input usecase.CreateOrderInput
}

type addToCartCall struct {
	id    string
	items []usecase.OrderLineInput
}

type checkOrderStatusCall struct {
	id  string
	ref string
}

// unknownToolCall covers unknown names and arguments that do not decode.
type unknownToolCall struct {
	id     string
	name   string
	reason string
}

func (c getMenuCall) callID() string          { return c.id }
func (c registerCustomerCall) callID() string { return c.id }
func (c createOrderCall) callID() string      { return c.id }
func (c addToCartCall) callID() string        { return c.id }
func (c checkOrderStatusCall) callID() string { return c.id }
func (c unknownToolCall) callID() string      { return c.id }

type orderArgs struct {
	Phone         string                   `json:"phone"`
	Items         []usecase.OrderLineInput `json:"items"`
	PaymentMethod string                   `json:"payment_method"`
	ChangeFor     *flexNumber              `json:"change_for"`
	CEP           string                   `json:"cep"`
	DeliveryType  string                   `json:"delivery_type"`
}

type cartArgs struct {
	Items []usecase.OrderLineInput `json:"items"`
}

type orderStatusArgs struct {
	Order flexString `json:"order"`
}

// flexString accepts a JSON string or number; engines send order numbers both ways.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)

		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return errors.Wrap(err, "expected string or number")
	}
	*s = flexString(num.String())

	return nil
}

// flexNumber accepts 50, 50.5, "50" and "50,50".
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = flexNumber(f)

		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "expected number")
	}
	f, err := strconv.ParseFloat(normalizeDecimal(str), 64)
	if err != nil {
		return errors.Wrap(err, "expected number")
	}
	*n = flexNumber(f)

	return nil
}

func normalizeDecimal(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			out = append(out, r)
		case r == ',':
			out = append(out, '.')
		}
	}

	return string(out)
}

// parseToolCall never fails: anything it cannot decode becomes an unknownToolCall the engine
// is told about in the tool result.
func parseToolCall(call service.ToolCall) toolCall {
	args := call.Arguments
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage("{}")
	}

	bad := func(err error) toolCall {
		return unknownToolCall{id: call.ID, name: call.Name, reason: "argumentos inválidos: " + err.Error()}
	}

	switch call.Name {
	case toolGetMenu:
		return getMenuCall{id: call.ID}

	case toolRegisterCustomer:
		var input usecase.RegisterCustomerInput
		if err := json.Unmarshal(args, &input); err != nil {
			return bad(err)
		}

		return registerCustomerCall{id: call.ID, input: input}

	case toolCreateOrder:
		var parsed orderArgs
		if err := json.Unmarshal(args, &parsed); err != nil {
			return bad(err)
		}
		input := usecase.CreateOrderInput{
			CustomerPhone: parsed.Phone,
			Items:         parsed.Items,
			PaymentMethod: parsed.PaymentMethod,
			CEP:           parsed.CEP,
			DeliveryType:  entity.DeliveryType(parsed.DeliveryType),
		}
		if parsed.ChangeFor != nil {
			change := float64(*parsed.ChangeFor)
			input.ChangeFor = &change
		}

		return createOrderCall{id: call.ID, input: input}

	case toolAddToCart:
		var parsed cartArgs
		if err := json.Unmarshal(args, &parsed); err != nil {
			return bad(err)
		}

		return addToCartCall{id: call.ID, items: parsed.Items}

	case toolCheckOrderStatus:
		var parsed orderStatusArgs
		if err := json.Unmarshal(args, &parsed); err != nil {
			return bad(err)
		}

		return checkOrderStatusCall{id: call.ID, ref: string(parsed.Order)}

	default:
		return unknownToolCall{id: call.ID, name: call.Name, reason: "ferramenta desconhecida"}
	}
}

var orderLineSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"product":   map[string]any{"type": "string", "description": "ID ou nome do produto como está no cardápio"},
		"quantity":  map[string]any{"type": "integer", "minimum": 1},
		"modifiers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Observações do item, ex.: sem cebola, borda recheada"},
	},
	"required": []string{"product", "quantity"},
}

// toolDefinitions returns the tool schema offered on a channel; add_to_cart only exists on web.
func toolDefinitions(channel entity.Channel) []service.ToolDefinition {
	tools := []service.ToolDefinition{
		{
			Name:        toolGetMenu,
			Description: "Retorna o cardápio com os produtos disponíveis, preços e IDs.",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		},
		{
			Name:        toolRegisterCustomer,
			Description: "Cadastra o cliente ou atualiza os dados informados. Chame antes de fechar o primeiro pedido.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone":        map[string]any{"type": "string"},
					"name":         map[string]any{"type": "string"},
					"address":      map[string]any{"type": "string", "description": "Endereço completo como o cliente escreveu"},
					"street":       map[string]any{"type": "string"},
					"number":       map[string]any{"type": "string"},
					"complement":   map[string]any{"type": "string"},
					"neighborhood": map[string]any{"type": "string"},
					"city":         map[string]any{"type": "string"},
					"state":        map[string]any{"type": "string"},
					"cep":          map[string]any{"type": "string"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        toolCreateOrder,
			Description: "Fecha o pedido do cliente cadastrado. Confirme itens, forma de pagamento e entrega ou retirada antes de chamar.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone":          map[string]any{"type": "string"},
					"items":          map[string]any{"type": "array", "items": orderLineSchema},
					"payment_method": map[string]any{"type": "string", "description": "pix, dinheiro, cartão de crédito ou débito"},
					"change_for":     map[string]any{"type": "number", "description": "Valor para troco quando o pagamento é em dinheiro"},
					"cep":            map[string]any{"type": "string"},
					"delivery_type":  map[string]any{"type": "string", "enum": []string{string(entity.DeliveryTypeDelivery), string(entity.DeliveryTypePickup)}},
				},
				"required": []string{"items", "payment_method", "delivery_type"},
			},
		},
	}

	if channel == entity.ChannelWeb {
		tools = append(tools, service.ToolDefinition{
			Name:        toolAddToCart,
			Description: "Adiciona itens ao carrinho do site do cliente.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"items": map[string]any{"type": "array", "items": orderLineSchema}},
				"required":   []string{"items"},
			},
		})
	}

	return append(tools, service.ToolDefinition{
		Name:        toolCheckOrderStatus,
		Description: "Consulta o status de um pedido pelo número (ex.: 42) ou código.",
		Parameters: map[string]any{
			"type":       "object",
			"properties": map[string]any{"order": map[string]any{"type": "string"}},
			"required":   []string{"order"},
		},
	})
}
