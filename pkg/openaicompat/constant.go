package openaicompat

import "time"

// Vendors served through the chat completions protocol.
const (
	VendorQwen     = "qwen"
	VendorGroq     = "groq"
	VendorDeepSeek = "deepseek"
)

const (
	DefaultTimeout = 30 * time.Second

	completionsPath    = "/chat/completions"
	responseFormatJSON = "json_object"
	roleSystem         = "system"
)

type preset struct {
	baseURL string
	model   string
}

var presets = map[string]preset{
	VendorQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	VendorGroq:     {baseURL: "https://api.groq.com/openai/v1", model: "llama-3.3-70b-versatile"},
	VendorDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
}

// aliases maps alternate config names onto a vendor.
var aliases = map[string]string{
	"alibaba": VendorQwen,
}
