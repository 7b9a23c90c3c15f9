package config

import (
	"fmt"
	"quickcap/pkg/terrors"
	"quickcap/pkg/utils"
	"unicode"

	"github.com/spf13/viper"
)

const maxCompanyCodeLen = 16

func validateConfig() []error {
	var errs []error
	// logging.*
	{
		if err := validateLogLevel("logging.console-level"); err != nil {
			errs = append(errs, err)
		}
		if err := validateLogLevel("logging.file-level"); err != nil {
			errs = append(errs, err)
		}
	}

	// parse.*
	{
		companies := viper.GetStringSlice("parse.companies")
		if len(companies) == 0 {
			errs = append(errs, fmt.Errorf("%w: %w: 'parse.companies' must not be empty", terrors.ErrConf, terrors.ErrValue))
		}
		for _, code := range companies {
			if err := validateCompanyCode(code); err != nil {
				errs = append(errs, err)
			}
		}
	}

	// limits.*
	{
		for _, key := range []string{"limits.max-value", "limits.max-effort"} {
			if err := validateTypeNumber(key); err != nil {
				errs = append(errs, err)
				continue
			}
			if val := viper.GetFloat64(key); val <= 0 {
				errs = append(errs, fmt.Errorf("%w: %w: value of '%s' must be positive not '%g'", terrors.ErrConf, terrors.ErrValue, key, val))
			}
		}
	}
	return errs
}

func validateCompanyCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: %w: company code must not be empty", terrors.ErrConf, terrors.ErrValue)
	}
	if utils.RuneCount(code) > maxCompanyCodeLen {
		return fmt.Errorf("%w: %w: company code '%s' must be at most '%d' characters", terrors.ErrConf, terrors.ErrValue, code, maxCompanyCodeLen)
	}
	for _, char := range code {
		if !(unicode.IsLetter(char) || unicode.IsDigit(char)) {
			return fmt.Errorf("%w: %w: company code '%s' must only consist of letters and digits not '%c'", terrors.ErrConf, terrors.ErrValue, code, char)
		}
	}
	return nil
}

func validateLogLevel(key string) error {
	if err := validateTypeInt(key); err != nil {
		return err
	}
	val := viper.GetInt(key)
	if val < -1 || val > 5 {
		return fmt.Errorf("%w: %w: config key '%s' must be between '-1' and '5' and not '%d'", terrors.ErrConf, terrors.ErrValue, key, val)
	}
	return nil
}

func validateTypeNumber(key string) error {
	raw := viper.Get(key)
	if raw == nil {
		return fmt.Errorf("%w: %w: config key '%s' not found", terrors.ErrConf, terrors.ErrNotFound, key)
	}
	switch raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of a numeric type not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}

func validateTypeInt(key string) error {
	raw := viper.Get(key)
	if raw == nil {
		return fmt.Errorf("%w: %w: config key '%s' not found", terrors.ErrConf, terrors.ErrNotFound, key)
	}
	switch raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of an int type not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}
