package domain

import "github.com/shopspring/decimal"

type APIVendor string

const (
	VendorBilalSada    APIVendor = "BILALSADA"
	VendorMaskawa      APIVendor = "MASKAWA"
	VendorAlrahuz      APIVendor = "ALRAHUZ"
	VendorAbbaPhantami APIVendor = "ABBAPHANTAMI"
	VendorSimHost      APIVendor = "SIMHOST"
)

type EmailProvider string

const (
	EmailSMTP   EmailProvider = "SMTP"
	EmailResend EmailProvider = "RESEND"
)

type PushProvider string

const (
	PushNone      PushProvider = "NONE"
	PushFirebase  PushProvider = "FIREBASE"
	PushOneSignal PushProvider = "ONESIGNAL"
)

type PaymentGateway string

const (
	GatewayPaystack    PaymentGateway = "PAYSTACK"
	GatewayFlutterwave PaymentGateway = "FLUTTERWAVE"
	GatewayMonnify     PaymentGateway = "MONNIFY"
)

type LandingStats struct {
	ActiveUsers       string `json:"activeUsers"       yaml:"activeUsers"`
	DailyTransactions string `json:"dailyTransactions" yaml:"dailyTransactions"`
	Uptime            string `json:"uptime"            yaml:"uptime"`
	Support           string `json:"support"           yaml:"support"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter"   yaml:"twitter"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Facebook  string `json:"facebook"  yaml:"facebook"`
}

// Settings глобальные настройки приложения: брендинг, флаги, ключи поставщиков и платежных шлюзов.
type Settings struct {
	AppName         string `json:"appName"         yaml:"appName"`
	LogoURL         string `json:"logoUrl"         yaml:"logoUrl"`
	SupportEmail    string `json:"supportEmail"    yaml:"supportEmail"`
	SupportPhone    string `json:"supportPhone"    yaml:"supportPhone"`
	MaintenanceMode bool   `json:"maintenanceMode" yaml:"maintenanceMode"`

	ProviderStatus map[string]bool `json:"providerStatus" yaml:"providerStatus"`
	ProviderStats  map[string]int  `json:"providerStats"  yaml:"providerStats"` // процент успешных операций 0-100

	ActiveAPIVendor APIVendor            `json:"activeApiVendor" yaml:"activeApiVendor"`
	APIKeys         map[APIVendor]string `json:"apiKeys"         yaml:"apiKeys"`

	EnableTwilio     bool   `json:"enableTwilio"     yaml:"enableTwilio"`
	TwilioAccountSID string `json:"twilioAccountSid" yaml:"twilioAccountSid"`
	TwilioAuthToken  string `json:"twilioAuthToken"  yaml:"twilioAuthToken"`
	TwilioSenderID   string `json:"twilioSenderId"   yaml:"twilioSenderId"`

	EmailProvider EmailProvider `json:"emailProvider" yaml:"emailProvider"`
	SMTPHost      string        `json:"smtpHost"      yaml:"smtpHost"`
	SMTPPort      int           `json:"smtpPort"      yaml:"smtpPort"`
	SMTPUser      string        `json:"smtpUser"      yaml:"smtpUser"`
	SMTPPass      string        `json:"smtpPass"      yaml:"smtpPass"`
	EmailFrom     string        `json:"emailFrom"     yaml:"emailFrom"`
	ResendAPIKey  string        `json:"resendApiKey"  yaml:"resendApiKey"`

	PushProvider        PushProvider `json:"pushProvider"        yaml:"pushProvider"`
	FirebaseServerKey   string       `json:"firebaseServerKey"   yaml:"firebaseServerKey"`
	FirebaseProjectID   string       `json:"firebaseProjectId"   yaml:"firebaseProjectId"`
	OneSignalAppID      string       `json:"oneSignalAppId"      yaml:"oneSignalAppId"`
	OneSignalRestAPIKey string       `json:"oneSignalRestApiKey" yaml:"oneSignalRestApiKey"`

	BankName      string `json:"bankName"      yaml:"bankName"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
	AccountName   string `json:"accountName"   yaml:"accountName"`

	MonnifyAPIKey       string `json:"monnifyApiKey"       yaml:"monnifyApiKey"`
	MonnifySecretKey    string `json:"monnifySecretKey"    yaml:"monnifySecretKey"`
	MonnifyContractCode string `json:"monnifyContractCode" yaml:"monnifyContractCode"`
	EnableMonnify       bool   `json:"enableMonnify"       yaml:"enableMonnify"`

	PaystackPublicKey string `json:"paystackPublicKey" yaml:"paystackPublicKey"`
	PaystackSecretKey string `json:"paystackSecretKey" yaml:"paystackSecretKey"`
	EnablePaystack    bool   `json:"enablePaystack"    yaml:"enablePaystack"`

	FlutterwavePublicKey string `json:"flutterwavePublicKey" yaml:"flutterwavePublicKey"`
	FlutterwaveSecretKey string `json:"flutterwaveSecretKey" yaml:"flutterwaveSecretKey"`
	EnableFlutterwave    bool   `json:"enableFlutterwave"    yaml:"enableFlutterwave"`

	EnableReferral        bool            `json:"enableReferral"        yaml:"enableReferral"`
	ReferralReward        decimal.Decimal `json:"referralReward"        yaml:"referralReward"`
	ReferralMinWithdrawal decimal.Decimal `json:"referralMinWithdrawal" yaml:"referralMinWithdrawal"`

	LandingHeroTitle     string       `json:"landingHeroTitle"     yaml:"landingHeroTitle"`
	LandingHeroSubtitle  string       `json:"landingHeroSubtitle"  yaml:"landingHeroSubtitle"`
	LandingStats         LandingStats `json:"landingStats"         yaml:"landingStats"`
	SocialLinks          SocialLinks  `json:"socialLinks"          yaml:"socialLinks"`
	MobileAppURL         string       `json:"mobileAppUrl"         yaml:"mobileAppUrl"`
	MobileAppVersion     string       `json:"mobileAppVersion"     yaml:"mobileAppVersion"`
	MobileAppReleaseDate string       `json:"mobileAppReleaseDate" yaml:"mobileAppReleaseDate"`
}

// IsProviderEnabled сообщает, включен ли оператор в настройках. Оператор, отсутствующий в карте, считается
// включенным.
func (s *Settings) IsProviderEnabled(provider string) bool {
	enabled, ok := s.ProviderStatus[provider]
	return !ok || enabled
}

// IsGatewayEnabled сообщает, включен ли платежный шлюз.
func (s *Settings) IsGatewayEnabled(gateway PaymentGateway) bool {
	switch gateway {
	case GatewayPaystack:
		return s.EnablePaystack
	case GatewayFlutterwave:
		return s.EnableFlutterwave
	case GatewayMonnify:
		return s.EnableMonnify
	default:
		return false
	}
}

// ActiveAPIKey ключ API активного поставщика.
func (s *Settings) ActiveAPIKey() string {
	return s.APIKeys[s.ActiveAPIVendor]
}

// Public возвращает копию настроек без секретов. Безопасно отдавать без авторизации.
func (s *Settings) Public() Settings {
	p := *s
	p.APIKeys = nil
	p.TwilioAccountSID, p.TwilioAuthToken = "", ""
	p.SMTPUser, p.SMTPPass, p.ResendAPIKey = "", "", ""
	p.FirebaseServerKey, p.OneSignalRestAPIKey = "", ""
	p.MonnifyAPIKey, p.MonnifySecretKey, p.MonnifyContractCode = "", "", ""
	p.PaystackSecretKey, p.FlutterwaveSecretKey = "", ""
	return p
}
