package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-images-dir directory for uploaded images
//	-max-upload-size upload size limit in bytes
//	-max-image-pixels decoded image size limit in pixels
//	-c/-config json file path with configs
//	-env-file .env file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration access token duration (e.g., "24h")
//	-verification-token-duration verification token duration (e.g., "48h")
//	-password-hash-cost bcrypt cost
//	-base-url public base URL
//	-log-level log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-host, -mail-port, -mail-username, -mail-password, -mail-from SMTP settings
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("buy-from-me", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.ImagesDir, "images-dir", "", "Uploaded images directory")
	fs.Int64Var(&cfg.Storage.Files.MaxUploadSize, "max-upload-size", 0, "Upload size limit in bytes")
	fs.Int64Var(&cfg.Storage.Files.MaxImagePixels, "max-image-pixels", 0, "Decoded image size limit in pixels")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", ".env file path")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Access token duration (e.g., 24h)")
	fs.DurationVar(&cfg.App.VerificationTokenDuration, "verification-token-duration", 0, "Verification token duration (e.g., 48h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&cfg.App.BaseURL, "base-url", "", "Public base URL")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Mail.Host, "mail-host", "", "SMTP host")
	fs.IntVar(&cfg.Mail.Port, "mail-port", 0, "SMTP port")
	fs.StringVar(&cfg.Mail.Username, "mail-username", "", "SMTP username")
	fs.StringVar(&cfg.Mail.Password, "mail-password", "", "SMTP password")
	fs.StringVar(&cfg.Mail.From, "mail-from", "", "Sender address")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
