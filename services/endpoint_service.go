package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

type EndpointService interface {
	GetEndpoints() map[string]interface{}
}

type endpointService struct {
	endpoints map[string]interface{}
}

func NewEndpointService() (EndpointService, error) {
	endpoints := map[string]interface{}{}
	if err := yaml.Unmarshal(endpointsYAML, &endpoints); err != nil {
		return nil, fmt.Errorf("parse endpoints.yaml: %w", err)
	}
	return &endpointService{endpoints: endpoints}, nil
}

func (s *endpointService) GetEndpoints() map[string]interface{} {
	return s.endpoints
}
