package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/trufnetwork/ip-rotation/internal/rotation"
)

// Context keys read by the app, passed as `--context key=value`.
const (
	ContextHostedZoneID      = "hostedZoneId"
	ContextZoneName          = "zoneName"
	ContextPrimaryRecordName = "primaryRecordName"
	ContextAliasSlot         = "aliasSlot"
	ContextDestroy           = "destroy"
	ContextStackName         = "stackName"
)

const DefaultStackName = "CloudFrontIpRotationStack"

// ErrMissingRequiredInput aborts the app before anything is synthesized.
var ErrMissingRequiredInput = errors.New("missing required context parameters")

// requiredKeys is the order inputs are reported in.
var requiredKeys = []string{ContextHostedZoneID, ContextZoneName, ContextPrimaryRecordName}

// Inputs is everything the stack consumes from the outside world. It is built
// once by LoadInputs and passed by value.
type Inputs struct {
	HostedZoneID      string
	ZoneName          string
	PrimaryRecordName string
	// AliasSlot is the slot that currently holds the alias-target role.
	AliasSlot int
	// Destroy disables input validation; teardown needs no domain.
	Destroy bool
}

// Binding returns the domain binding of the inputs. A missing hosted zone ID
// or zone name means no domain steps run.
func (in Inputs) Binding() rotation.DomainBinding {
	if in.HostedZoneID == "" || in.ZoneName == "" {
		return rotation.Unbound()
	}
	return rotation.Bound(rotation.DomainSpec{
		ZoneName:   in.ZoneName,
		RecordName: in.PrimaryRecordName,
	})
}

// contextValues mirrors the raw context. Pointers distinguish absent from zero.
type contextValues struct {
	HostedZoneID      string `mapstructure:"hostedZoneId" validate:"required"`
	ZoneName          string `mapstructure:"zoneName" validate:"required"`
	PrimaryRecordName string `mapstructure:"primaryRecordName" validate:"required"`
	AliasSlot         *int   `mapstructure:"aliasSlot"`
}

type destroyValue struct {
	Destroy bool `mapstructure:"destroy"`
}

// LoadInputs reads the app inputs from the construct context and the
// environment. The destroy flag is read first; in destroy mode the other keys
// are decoded best-effort and never rejected. Otherwise it returns
// ErrMissingRequiredInput if any of hostedZoneId, zoneName or
// primaryRecordName is absent.
func LoadInputs(scope constructs.Construct) (Inputs, error) {
	raw := map[string]interface{}{}
	for _, key := range []string{ContextHostedZoneID, ContextZoneName, ContextPrimaryRecordName, ContextAliasSlot} {
		if v := scope.Node().TryGetContext(jsii.String(key)); v != nil {
			raw[key] = v
		}
	}

	var flag destroyValue
	if v := scope.Node().TryGetContext(jsii.String(ContextDestroy)); v != nil {
		if err := decodeContext(map[string]interface{}{ContextDestroy: v}, &flag); err != nil {
			return Inputs{}, err
		}
	}
	envVars, err := GetEnvironmentVariables[RotationEnvironmentVariables]()
	if err != nil {
		return Inputs{}, err
	}
	destroy := flag.Destroy || envVars.Destroy

	var values contextValues
	if err := decodeContext(raw, &values); err != nil && !destroy {
		return Inputs{}, err
	}

	inputs := Inputs{
		HostedZoneID:      values.HostedZoneID,
		ZoneName:          values.ZoneName,
		PrimaryRecordName: values.PrimaryRecordName,
		AliasSlot:         rotation.DefaultAliasSlot,
		Destroy:           destroy,
	}
	if values.AliasSlot != nil {
		inputs.AliasSlot = *values.AliasSlot
	}

	if inputs.Destroy {
		return inputs, nil
	}
	if err := validateRequired(values); err != nil {
		return Inputs{}, err
	}
	return inputs, nil
}

func decodeContext(raw map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "create context decoder")
	}
	return errors.Wrap(decoder.Decode(raw), "decode context")
}

func validateRequired(values contextValues) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})

	err := validate.Struct(values)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate context")
	}

	missing := map[string]bool{}
	for _, fe := range fieldErrs {
		missing[fe.Field()] = true
	}
	keys := make([]string, 0, len(missing))
	for _, key := range requiredKeys {
		if missing[key] {
			keys = append(keys, key)
		}
	}
	return errors.Wrapf(ErrMissingRequiredInput, "missing %s", strings.Join(keys, ", "))
}

// Usage lists the context parameters a deploy needs.
func Usage() string {
	var b strings.Builder
	b.WriteString("Please provide the following parameters:\n")
	for _, key := range requiredKeys {
		fmt.Fprintf(&b, "  --context %s=YOUR_%s\n", key, upperSnake(key))
	}
	return b.String()
}

// upperSnake turns hostedZoneId into HOSTED_ZONE_ID.
func upperSnake(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// StackName returns the stack name from context, defaulting to DefaultStackName.
func StackName(scope constructs.Construct) string {
	if v, ok := scope.Node().TryGetContext(jsii.String(ContextStackName)).(string); ok && v != "" {
		return v
	}
	return DefaultStackName
}
