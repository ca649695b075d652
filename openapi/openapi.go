// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYNSEARCH.
//
//  SYNSEARCH is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYNSEARCH is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYNSEARCH.  If not, see <https://www.gnu.org/licenses/>.


package openapi

func articleIDParam() Parameter {
	return Parameter{
		Name:        "articleId",
		In:          "path",
		Description: "A numeric ID of an article (1-based)",
		Required:    true,
		Schema: ParamSchema{
			Type: "integer",
		},
	}
}

func commonResponses(okDesc string) MethodResponses {
	return MethodResponses{
		200: {Description: okDesc},
		400: {Description: "Invalid request arguments or article in a wrong state"},
		404: {Description: "Article not found"},
		500: {Description: "Internal processing error"},
		504: {Description: "No worker answered in time"},
	}
}

// NewResponse creates an OpenAPI 3.1 description of the HTTP API
// with the provided version and public URL.
func NewResponse(ver, url string) *APIResponse {
	paths := make(map[string]Methods)

	paths["/articles"] = Methods{
		Get: &Method{
			Description: "Shows the number of corpus articles and a list of IDs of articles with an available dependency annotation.",
			OperationID: "Articles",
			Parameters:  []Parameter{},
			Responses: MethodResponses{
				200: {Description: "Corpus overview"},
			},
		},
	}

	paths["/pos-freqs/{articleId}"] = Methods{
		Get: &Method{
			Description: "Calculates frequencies of universal part-of-speech tags in an annotated article.",
			OperationID: "POSFreqs",
			Parameters:  []Parameter{articleIDParam()},
			Responses:   commonResponses("POS tag frequencies sorted by frequency"),
		},
	}

	paths["/pattern-search"] = Methods{
		Get: &Method{
			Description: "Searches annotated articles for a syntactic pattern formed by a head part of speech, a dependency relation and a dependent part of speech. Matching dependent subtrees are returned as text phrases grouped by article and sentence.",
			OperationID: "PatternSearch",
			Parameters: []Parameter{
				{
					Name:        "root",
					In:          "query",
					Description: "A universal POS tag of the head token (e.g. `VERB`)",
					Required:    true,
					Schema:      ParamSchema{Type: "string"},
				},
				{
					Name:        "rel",
					In:          "query",
					Description: "A dependency relation between the head and the dependent (e.g. `obj`)",
					Required:    true,
					Schema:      ParamSchema{Type: "string"},
				},
				{
					Name:        "child",
					In:          "query",
					Description: "A universal POS tag of the dependent token (e.g. `NOUN`)",
					Required:    true,
					Schema:      ParamSchema{Type: "string"},
				},
				{
					Name:        "article",
					In:          "query",
					Description: "An ID of an article to search in. The argument can be repeated. If omitted, all the articles are searched.",
					Required:    false,
					Schema: ParamSchema{
						Type:  "array",
						Items: &ParamSchema{Type: "integer"},
					},
				},
			},
			Responses: commonResponses("Found phrases grouped by article and sentence"),
		},
	}

	paths["/tools/analyze/{articleId}"] = Methods{
		Post: &Method{
			Description: "Cleans a raw article text and creates its dependency annotation. Requires an authorization token.",
			OperationID: "Analyze",
			Parameters:  []Parameter{articleIDParam()},
			Responses:   commonResponses("Summary of the created annotation"),
		},
	}

	return &APIResponse{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "SynSearch - syntactic search in dependency annotated texts",
			Description: "Searches for syntactic patterns and calculates part-of-speech frequencies in a corpus of dependency annotated articles",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
