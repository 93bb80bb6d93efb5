package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. BSPX_TICKERS=AAPL,MSFT.
const EnvPrefix = "BSPX"

// DefaultRegion is used for Secrets Manager when AWS_REGION is not set.
const DefaultRegion = "us-west-1"

type secretGetter interface {
	GetSecretValue(input *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error)
}

var newSecretsClient = func() (secretGetter, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = DefaultRegion
	}
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, err
	}
	return secretsmanager.New(sess), nil
}

func getSecret(svc secretGetter, secretName string) ([]byte, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := svc.GetSecretValue(input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return nil, fmt.Errorf("secret %s: %s: %w", secretName, aerr.Code(), err)
		}
		return nil, fmt.Errorf("secret %s: %w", secretName, err)
	}
	if result.SecretString != nil {
		return []byte(*result.SecretString), nil
	}
	return result.SecretBinary, nil
}

func readSource(name string, secret bool) ([]byte, error) {
	if !secret {
		return os.ReadFile(name)
	}
	svc, err := newSecretsClient()
	if err != nil {
		return nil, err
	}
	return getSecret(svc, name)
}

// LoadConfiguration builds a config from defaults, the JSON in file (or in the AWS secret
// named file when secret is set) and BSPX_* environment variables, in that order. A .env
// file in the working directory is loaded into the environment first. An empty file
// name skips the JSON step.
func LoadConfiguration(file string, secret bool) (Config, error) {
	config := DefaultConfig()
	if file != "" {
		raw, err := readSource(file, secret)
		if err != nil {
			return config, err
		}
		if err := json.Unmarshal(raw, &config); err != nil {
			return config, fmt.Errorf("parsing %s: %w", file, err)
		}
	}
	if err := ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// ApplyEnv overrides config fields with the BSPX_* variables that are set.
func ApplyEnv(config *Config) error {
	_ = godotenv.Load()
	return envconfig.Process(EnvPrefix, config)
}

// LoadENV exports every key of the JSON object stored in the named AWS secret as an
// environment variable.
func LoadENV(secretName string) error {
	raw, err := readSource(secretName, true)
	if err != nil {
		return err
	}
	vars := make(map[string]string)
	if err := json.Unmarshal(raw, &vars); err != nil {
		return fmt.Errorf("parsing %s: %w", secretName, err)
	}
	for key, value := range vars {
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
