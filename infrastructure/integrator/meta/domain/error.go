package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	IsTransient  bool        `json:"is_transient,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// Códigos de throttling e indisponibilidade temporária do Graph
var transientCodes = map[int]bool{
	1:   true, // API Unknown
	2:   true, // API Service
	4:   true, // limite de chamadas do app
	17:  true, // limite de chamadas do usuário
	32:  true, // limite de chamadas da página
	341: true, // limite da aplicação
	613: true, // limite de chamadas customizado
}

func (e *ErrorResponse) Empty() bool {
	return e.Error.Code == 0 && e.Error.Message == ""
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsAuthorization cobre token expirado, sessão inválida e os subcódigos OAuth 458 a 467
func (e *ErrorResponse) IsAuthorization() bool {
	if e.IsTokenExpired() || e.Error.Code == 102 {
		return true
	}
	return e.Error.Type == "OAuthException" && e.Error.ErrorSubcode >= 458 && e.Error.ErrorSubcode <= 467
}

// IsTransient cobre rate limit (incluindo os limites de Ads Insights 80000-80014) e falhas temporárias
func (e *ErrorResponse) IsTransient() bool {
	code := e.Error.Code
	return e.Error.IsTransient || transientCodes[code] || (code >= 80000 && code <= 80014)
}
