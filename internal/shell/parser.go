package shell

import "fmt"

// Stage is one command within a pipeline, with its redirections.
type Stage struct {
	Args      []string
	In        string // input redirection file, "" for none
	Out       string // output redirection file, "" for none
	AppendOut bool
}

// Pipeline is a chain of stages joined by pipes, terminated by an
// operator that decides whether the next pipeline runs.
type Pipeline struct {
	Stages []Stage
	Op     Kind // And, Or, or Semi
}

// Parse turns a command line into pipelines. An empty line parses to
// no pipelines.
func Parse(input string) ([]Pipeline, error) {
	tokens := Tokenize(input)

	var pipelines []Pipeline
	var current Pipeline
	var stage Stage
	var redirect Kind
	var parseErr error
	pendingRedirect := false

	flushStage := func() {
		if len(stage.Args) == 0 && (stage.In != "" || stage.Out != "") {
			parseErr = fmt.Errorf("syntax error: redirection without a command")
		} else if len(stage.Args) > 0 {
			current.Stages = append(current.Stages, stage)
		}
		stage = Stage{}
	}
	flushPipeline := func(op Kind) {
		flushStage()
		if len(current.Stages) > 0 {
			current.Op = op
			pipelines = append(pipelines, current)
		}
		current = Pipeline{}
	}

	for _, tok := range tokens {
		if pendingRedirect {
			if tok.Kind != Word {
				return nil, fmt.Errorf("syntax error near '%s': expected file name", tok.Value)
			}
			switch redirect {
			case RedirIn:
				stage.In = tok.Value
			case RedirOut:
				stage.Out = tok.Value
				stage.AppendOut = false
			case RedirAppend:
				stage.Out = tok.Value
				stage.AppendOut = true
			}
			pendingRedirect = false
			continue
		}

		switch tok.Kind {
		case Word:
			stage.Args = append(stage.Args, tok.Value)
		case RedirIn, RedirOut, RedirAppend:
			redirect = tok.Kind
			pendingRedirect = true
		case Pipe:
			if len(stage.Args) == 0 {
				return nil, fmt.Errorf("syntax error near '|': missing command")
			}
			flushStage()
		case And, Or, Semi:
			flushPipeline(tok.Kind)
		}
	}
	if pendingRedirect {
		return nil, fmt.Errorf("syntax error: redirection without file name")
	}
	flushPipeline(Semi)
	if parseErr != nil {
		return nil, parseErr
	}
	return pipelines, nil
}
