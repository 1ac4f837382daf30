package garden

import "plantkeeper/internal/domain/garden"

type getInput struct{}

type getOutput struct {
	Body garden.GetResponse
}

type putInput struct {
	Body garden.PutRequest
}

type putOutput struct {
	Body garden.PutResponse
}
