package cmd

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/datakit/core/error"
	mdwerrors "github.com/msto63/datakit/core/errors"
)

// readDocument decodes a YAML or JSON document from path. "-" reads stdin.
func readDocument(in io.Reader, path string) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, inputError("readDocument", path, err, mdwerror.CodeIOError, "Eingabe konnte nicht gelesen werden")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, inputError("readDocument", path, err, mdwerror.CodeInvalidFormat, "Eingabe ist kein gültiges YAML oder JSON")
	}
	return doc, nil
}

func readList(in io.Reader, path string) ([]any, error) {
	doc, err := readDocument(in, path)
	if err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, mdwerrors.InvalidInput(mdwerrors.GroupCLI, "readList", path, "Eingabe muss eine Liste sein")
	}
	return list, nil
}

func readObject(in io.Reader, path string) (map[string]any, error) {
	doc, err := readDocument(in, path)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, mdwerrors.InvalidInput(mdwerrors.GroupCLI, "readObject", path, "Eingabe muss ein Objekt sein")
	}
	return obj, nil
}

// parseValue reads a command line argument as YAML scalar, so "42" is a
// number and "true" a boolean. Unparseable text stays a string.
func parseValue(arg string) any {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

// textInput joins args, or reads stdin when there are none
func textInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", inputError("textInput", "-", err, mdwerror.CodeIOError, "Eingabe konnte nicht gelesen werden")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func inputError(operation, path string, cause error, code mdwerror.Code, reason string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.GroupCLI).
		Operation(operation).
		Reason(reason).
		Cause(cause).
		Code(code).
		Detail("path", path).
		Build()
}
