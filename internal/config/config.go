package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	KeywordTool KeywordTool `mapstructure:",squash"`
	AdLibrary   AdLibrary   `mapstructure:",squash"`
	KeywordSync KeywordSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	DemoMode bool   `mapstructure:"demo_mode"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

type KeywordTool struct {
	BaseURL string `mapstructure:"keywordtool_base_url"`
	APIKey  string `mapstructure:"keywordtool_api_key"`
	Country string `mapstructure:"keywordtool_country"`
}

type AdLibrary struct {
	MetaURL           string `mapstructure:"adlibrary_meta_url"`
	MetaAccessToken   string `mapstructure:"adlibrary_meta_access_token"`
	TiktokURL         string `mapstructure:"adlibrary_tiktok_url"`
	TiktokAccessToken string `mapstructure:"adlibrary_tiktok_access_token"`
	GoogleURL         string `mapstructure:"adlibrary_google_url"`
	GoogleAPIKey      string `mapstructure:"adlibrary_google_api_key"`
}

type KeywordSync struct {
	CronSchedule        string `mapstructure:"keyword_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"keyword_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"keyword_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DEMO_MODE", true)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/totalsearch")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("KEYWORDTOOL_BASE_URL", "https://api.keywordtool.io/v2")
	viper.SetDefault("KEYWORDTOOL_API_KEY", "")
	viper.SetDefault("KEYWORDTOOL_COUNTRY", "us")

	viper.SetDefault("ADLIBRARY_META_URL", "https://graph.facebook.com/v18.0/ads_archive")
	viper.SetDefault("ADLIBRARY_META_ACCESS_TOKEN", "")
	viper.SetDefault("ADLIBRARY_TIKTOK_URL", "https://open.tiktokapis.com/v2/research/adlib/ad/query")
	viper.SetDefault("ADLIBRARY_TIKTOK_ACCESS_TOKEN", "")
	viper.SetDefault("ADLIBRARY_GOOGLE_URL", "https://www.searchapi.io/api/v1/search")
	viper.SetDefault("ADLIBRARY_GOOGLE_API_KEY", "")

	// Defaults para sincronização de snapshots de keywords
	viper.SetDefault("KEYWORD_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("KEYWORD_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições ao vendor
	viper.SetDefault("KEYWORD_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	// Sem chave do vendor a API opera somente com os dados de demonstração
	if config.KeywordTool.APIKey == "" && !config.App.DemoMode {
		logrus.Warn("KEYWORDTOOL_API_KEY ausente, ativando modo demo")
		config.App.DemoMode = true
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
