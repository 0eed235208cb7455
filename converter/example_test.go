package converter_test

import (
	"fmt"
	"log"

	"github.com/erraggy/smithytools/converter"
	"github.com/erraggy/smithytools/smithy"
)

const pingAST = `{
  "smithy": "2.0",
  "shapes": {
    "example.ping#PingService": {
      "type": "service",
      "version": "1.0.0",
      "operations": [{"target": "example.ping#Ping"}]
    },
    "example.ping#Ping": {
      "type": "operation",
      "output": {"target": "example.ping#PingOutput"},
      "traits": {
        "smithy.api#http": {"method": "GET", "uri": "/ping"},
        "smithy.api#readonly": {}
      }
    },
    "example.ping#PingOutput": {
      "type": "structure",
      "members": {
        "message": {"target": "smithy.api#String"}
      }
    }
  }
}`

func ExampleConvert() {
	model, err := smithy.DecodeAST([]byte(pingAST))
	if err != nil {
		log.Fatal(err)
	}

	result, err := converter.Convert(model, smithy.ShapeID{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Document.OpenAPI)
	fmt.Println(result.Document.Info.Title)
	fmt.Println(len(result.Document.Paths))
	fmt.Println(result.Success)
	// Output:
	// 3.0.3
	// PingService
	// 1
	// true
}

func ExampleConvertWithOptions() {
	model, err := smithy.DecodeAST([]byte(pingAST))
	if err != nil {
		log.Fatal(err)
	}

	result, err := converter.ConvertWithOptions(
		converter.WithModel(model),
		converter.WithOpenAPIVersion("3.1"),
		converter.WithNamingStrategy(converter.NamingFullyQualified),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Document.OpenAPI)
	fmt.Println(result.Document.Components.Schemas.Names()[0])
	// Output:
	// 3.1.0
	// ExamplePingPingOutput
}

func ExampleConverter_ConvertDocument() {
	model, err := smithy.DecodeAST([]byte(pingAST))
	if err != nil {
		log.Fatal(err)
	}
	forward, err := converter.Convert(model, smithy.ShapeID{})
	if err != nil {
		log.Fatal(err)
	}

	back, err := converter.New().ConvertDocument(forward.Document, "example.ping")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(back.Service)
	fmt.Println(back.Model.Contains(smithy.MustParseShapeID("example.ping#Ping")))
	// Output:
	// example.ping#PingService
	// true
}
