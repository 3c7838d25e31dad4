package conf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ringo-is-a-color/exithook/util/errors"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
}

func Parse(configFilePath string) (*Config, error) {
	// includes file's abs path when an error occurs
	fullPath, err := filepath.Abs(configFilePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	bs, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, errors.Wrap(err, "error")
	}

	config := &Config{}
	err = json.Unmarshal(bs, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "error: %v", configFilePath)
	}

	err = validate.Struct(config)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			validatedError := errors.Newf("error: fail to parse the config file %v", configFilePath)
			for _, err := range errs {
				fieldName := err.Namespace()[strings.Index(err.Namespace(), ".")+1:]
				validatedError = errors.Join(validatedError, errors.Newf("  the '%v' field should be '%v'", fieldName, err.ActualTag()))
			}
			return nil, validatedError
		}
		return nil, errors.WithStack(err)
	}
	return config, nil
}
