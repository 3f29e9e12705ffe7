// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cache

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
)

// SourceMUS is the MUS serializer for core.Source.
var SourceMUS = sourceMUS{}

type sourceMUS struct{}

func (s sourceMUS) Marshal(v core.Source, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Snippet, bs[n:])
	return
}

func (s sourceMUS) Unmarshal(bs []byte) (v core.Source, n int, err error) {
	var n1 int
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Snippet, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sourceMUS) Size(v core.Source) (size int) {
	size = ord.String.Size(v.Name)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Snippet)
	return
}

// ResultMUS is the MUS serializer for search.Result.
var ResultMUS = resultMUS{}

type resultMUS struct{}

func (s resultMUS) Marshal(v search.Result, bs []byte) (n int) {
	n = ord.String.Marshal(v.Answer, bs)
	n += varint.PositiveInt.Marshal(len(v.Sources), bs[n:])
	for _, src := range v.Sources {
		n += SourceMUS.Marshal(src, bs[n:])
	}
	return
}

func (s resultMUS) Unmarshal(bs []byte) (v search.Result, n int, err error) {
	var n1 int
	v.Answer, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length > 0 {
		v.Sources = make([]core.Source, 0, length)
	}
	for i := 0; i < length; i++ {
		var src core.Source
		src, n1, err = SourceMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.Sources = append(v.Sources, src)
	}
	return
}

func (s resultMUS) Size(v search.Result) (size int) {
	size = ord.String.Size(v.Answer)
	size += varint.PositiveInt.Size(len(v.Sources))
	for _, src := range v.Sources {
		size += SourceMUS.Size(src)
	}
	return
}

// MarshalResult serializes a search result to bytes.
func MarshalResult(result *search.Result) []byte {
	buf := make([]byte, ResultMUS.Size(*result))
	ResultMUS.Marshal(*result, buf)
	return buf
}

// UnmarshalResult deserializes a search result from bytes.
func UnmarshalResult(data []byte) (*search.Result, error) {
	result, _, err := ResultMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
