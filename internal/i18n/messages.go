package i18n

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyUnauthorized:       "Não autorizado",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyForbidden:          "Proibido",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyConflict:           "Conflito",
			ErrKeyInvalidToken:       "Token inválido ou expirado",
			ErrKeyTokenRequired:      "Token de autenticação é obrigatório",
			ErrKeyTimeout:            "Tempo limite da requisição excedido",
			ErrKeyServiceUnavailable: "Serviço temporariamente indisponível",

			ErrKeyIdempotencyKeyReused: "Chave de idempotência já usada com outra requisição",
			ErrKeyIdempotencyInFlight:  "Uma requisição com esta chave de idempotência ainda está em andamento",

			ErrKeySessionNotFound:  "Carrinho não encontrado ou expirado",
			ErrKeyItemNotFound:     "Item não encontrado no carrinho",
			ErrKeyInvalidQuantity:  "A quantidade deve estar entre 1 e 9999",
			ErrKeyInvalidItem:      "Item do carrinho inválido",
			ErrKeyInvalidMode:      "Forma de entrega inválida",
			ErrKeyAddressRequired:  "O endereço precisa de um CEP",
			ErrKeyInvalidPostal:    "CEP inválido",
			ErrKeySessionForbidden: "Este carrinho pertence a outro cliente",

			ErrKeyEmptyCart:           "Seu carrinho está vazio",
			ErrKeyPhoneRequired:       "É necessário ter um telefone cadastrado para finalizar a compra. Por favor, atualize seu perfil.",
			ErrKeyInvalidCheckoutItem: "Todos os itens precisam de preço e quantidade válidos",
			ErrKeyShippingPending:     "Informe um CEP válido para calcular o frete",
			ErrKeyAddressIncomplete:   "Preencha todos os campos do endereço",
			ErrKeyAddressMismatch:     "O CEP do endereço não corresponde ao CEP do frete calculado",
			ErrKeyStaleRevision:       "O carrinho mudou, confira os valores antes de finalizar",

			ErrKeyInvalidTariff:          "Tabela de frete inválida",
			ErrKeyTariffStoreUnavailable: "Armazenamento de tabelas de frete não configurado",

			LabelShippingFree:         "Grátis",
			LabelShippingPending:      "A calcular",
			LabelItemCount + ".one":   "{count} item",
			LabelItemCount + ".other": "{count} itens",
		},
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyForbidden:          "Forbidden",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyServiceUnavailable: "Service temporarily unavailable",

			ErrKeyIdempotencyKeyReused: "Idempotency key already used with a different request",
			ErrKeyIdempotencyInFlight:  "A request with this idempotency key is still in progress",

			ErrKeySessionNotFound:  "Cart not found or expired",
			ErrKeyItemNotFound:     "Item not found in cart",
			ErrKeyInvalidQuantity:  "Quantity must be between 1 and 9999",
			ErrKeyInvalidItem:      "Invalid cart item",
			ErrKeyInvalidMode:      "Invalid delivery option",
			ErrKeyAddressRequired:  "The address needs a postal code",
			ErrKeyInvalidPostal:    "Invalid postal code",
			ErrKeySessionForbidden: "This cart belongs to another customer",

			ErrKeyEmptyCart:           "Your cart is empty",
			ErrKeyPhoneRequired:       "A registered phone number is required to check out. Please update your profile.",
			ErrKeyInvalidCheckoutItem: "Every item needs a valid price and quantity",
			ErrKeyShippingPending:     "Enter a valid postal code to calculate shipping",
			ErrKeyAddressIncomplete:   "Fill in every address field",
			ErrKeyAddressMismatch:     "The address postal code does not match the quoted postal code",
			ErrKeyStaleRevision:       "Your cart changed, please review it before checking out",

			ErrKeyInvalidTariff:          "Invalid shipping tariff",
			ErrKeyTariffStoreUnavailable: "Tariff storage is not configured",

			LabelShippingFree:         "Free",
			LabelShippingPending:      "To be calculated",
			LabelItemCount + ".one":   "{count} item",
			LabelItemCount + ".other": "{count} items",
		},
		"nl": {
			ErrKeyInvalidRequest:     "Ongeldig verzoek",
			ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
			ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
			ErrKeyUnauthorized:       "Niet geautoriseerd",
			ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
			ErrKeyForbidden:          "Verboden",
			ErrKeyNotFound:           "Niet gevonden",
			ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Ongeldig of verlopen token",
			ErrKeyTokenRequired:      "Authenticatietoken is vereist",
			ErrKeyTimeout:            "Time-out van het verzoek",
			ErrKeyServiceUnavailable: "Dienst tijdelijk niet beschikbaar",

			ErrKeyIdempotencyKeyReused: "Idempotentiesleutel al gebruikt voor een ander verzoek",
			ErrKeyIdempotencyInFlight:  "Een verzoek met deze idempotentiesleutel wordt nog verwerkt",

			ErrKeySessionNotFound:  "Winkelwagen niet gevonden of verlopen",
			ErrKeyItemNotFound:     "Artikel niet gevonden in winkelwagen",
			ErrKeyInvalidQuantity:  "Aantal moet tussen 1 en 9999 liggen",
			ErrKeyInvalidItem:      "Ongeldig artikel",
			ErrKeyInvalidMode:      "Ongeldige bezorgoptie",
			ErrKeyAddressRequired:  "Het adres heeft een postcode nodig",
			ErrKeyInvalidPostal:    "Ongeldige postcode",
			ErrKeySessionForbidden: "Deze winkelwagen hoort bij een andere klant",

			ErrKeyEmptyCart:           "Je winkelwagen is leeg",
			ErrKeyPhoneRequired:       "Een geregistreerd telefoonnummer is vereist om af te rekenen. Werk je profiel bij.",
			ErrKeyInvalidCheckoutItem: "Elk artikel heeft een geldige prijs en aantal nodig",
			ErrKeyShippingPending:     "Vul een geldige postcode in om de verzendkosten te berekenen",
			ErrKeyAddressIncomplete:   "Vul alle adresvelden in",
			ErrKeyAddressMismatch:     "De postcode van het adres komt niet overeen met de berekende postcode",
			ErrKeyStaleRevision:       "Je winkelwagen is gewijzigd, controleer deze voor het afrekenen",

			ErrKeyInvalidTariff:          "Ongeldig verzendtarief",
			ErrKeyTariffStoreUnavailable: "Opslag voor tarieven is niet geconfigureerd",

			LabelShippingFree:         "Gratis",
			LabelShippingPending:      "Nog te berekenen",
			LabelItemCount + ".one":   "{count} artikel",
			LabelItemCount + ".other": "{count} artikelen",
		},
	}
}
