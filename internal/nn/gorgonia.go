package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// GorgoniaEngine trains networks with gorgonia. The embedding plus
// average pooling pair is lowered to one matrix product: a review
// becomes a bag-of-tokens row normalized by sequence length, and
// multiplying it by the embedding matrix yields exactly the mean
// of the token embeddings.
type GorgoniaEngine struct{}

func NewGorgoniaEngine() *GorgoniaEngine {
	return &GorgoniaEngine{}
}

func (e *GorgoniaEngine) Name() string {
	return "gorgonia"
}

func (e *GorgoniaEngine) Build(spec Spec) (Net, error) {
	if len(spec.Layers) < 3 || spec.Layers[0].Kind != LAYER_EMBEDDING {
		return nil, fmt.Errorf("spec must start with an embedding layer, rebuild it with nn.Builder")
	}

	return &gorgoniaNet{spec: spec}, nil
}

// gorgoniaNet keeps parameters as raw tensors. Graphs are rebuilt
// per batch shape and attach to the same tensor backings, so the
// solver's in-place updates survive across graphs.
type gorgoniaNet struct {
	spec   Spec
	embed  *tensor.Dense
	denseW []*tensor.Dense
	denseB []*tensor.Dense
}

type forwardGraph struct {
	g      *gorgonia.ExprGraph
	x      *gorgonia.Node
	y      *gorgonia.Node
	out    *gorgonia.Node
	cost   *gorgonia.Node
	params gorgonia.Nodes
}

func (n *gorgoniaNet) Fit(seqs [][]int, labels []float64, opts model.TrainOptions) (*model.History, error) {
	if len(seqs) != len(labels) {
		return nil, fmt.Errorf("got %d sequences for %d labels", len(seqs), len(labels))
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("no training data")
	}
	if opts.Epochs <= 0 {
		return nil, fmt.Errorf("epoch count is %d, want positive", opts.Epochs)
	}
	if opts.ValidationSplit < 0 || opts.ValidationSplit >= 1 {
		return nil, fmt.Errorf("validation split %f out of range", opts.ValidationSplit)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	n.initParams(rng)

	nVal := int(float64(len(seqs)) * opts.ValidationSplit)
	nTrain := len(seqs) - nVal
	if nTrain == 0 {
		return nil, fmt.Errorf("validation split leaves no training data")
	}

	trainSeqs, trainLabels := seqs[:nTrain], labels[:nTrain]
	valSeqs, valLabels := seqs[nTrain:], labels[nTrain:]

	batch := opts.BatchSize
	if batch <= 0 {
		batch = 32
	}
	if batch > nTrain {
		batch = nTrain
	}

	fg, err := n.buildGraph(batch)
	if err != nil {
		return nil, fmt.Errorf("could not build training graph: %w", err)
	}
	if _, err := gorgonia.Grad(fg.cost, fg.params...); err != nil {
		return nil, fmt.Errorf("could not differentiate cost: %w", err)
	}

	machine := gorgonia.NewTapeMachine(fg.g, gorgonia.BindDualValues(fg.params...))
	defer machine.Close()

	solver, err := newSolver(opts)
	if err != nil {
		return nil, err
	}

	history := &model.History{}
	numBatches := nTrain / batch

	for epoch := 1; epoch <= opts.Epochs; epoch++ {
		perm := rng.Perm(nTrain)

		var lossSum float64
		var correct, seen int

		for bi := 0; bi < numBatches; bi++ {
			ids := perm[bi*batch : (bi+1)*batch]

			xT, yT, err := n.encodeBatch(trainSeqs, trainLabels, ids)
			if err != nil {
				return nil, err
			}

			if err := gorgonia.Let(fg.x, xT); err != nil {
				return nil, fmt.Errorf("could not bind inputs: %w", err)
			}
			if err := gorgonia.Let(fg.y, yT); err != nil {
				return nil, fmt.Errorf("could not bind labels: %w", err)
			}

			if err := machine.RunAll(); err != nil {
				return nil, fmt.Errorf("epoch %d batch %d failed: %w", epoch, bi, err)
			}

			lossSum += fg.cost.Value().Data().(float64)
			correct += countCorrect(fg.out.Value().Data().([]float64), trainLabels, ids)
			seen += len(ids)

			if err := solver.Step(gorgonia.NodesToValueGrads(fg.params)); err != nil {
				return nil, fmt.Errorf("parameter update failed: %w", err)
			}

			machine.Reset()
		}

		stats := model.EpochStats{
			Epoch:    epoch,
			Loss:     lossSum / float64(numBatches),
			Accuracy: float64(correct) / float64(seen),
		}

		if nVal > 0 {
			valLoss, valAcc, err := n.score(valSeqs, valLabels)
			if err != nil {
				return nil, fmt.Errorf("validation failed on epoch %d: %w", epoch, err)
			}
			stats.ValLoss, stats.ValAccuracy = valLoss, valAcc
		}

		history.Append(stats)
		if opts.OnEpoch != nil {
			opts.OnEpoch(stats)
		}

		log.Debug().Msgf("epoch %d: loss %f, accuracy %f", epoch, stats.Loss, stats.Accuracy)
	}

	return history, nil
}

func (n *gorgoniaNet) Evaluate(seqs [][]int, labels []float64) (float64, float64, error) {
	if n.embed == nil {
		return 0, 0, fmt.Errorf("network has not been fitted")
	}
	if len(seqs) != len(labels) {
		return 0, 0, fmt.Errorf("got %d sequences for %d labels", len(seqs), len(labels))
	}
	if len(seqs) == 0 {
		return 0, 0, fmt.Errorf("no evaluation data")
	}

	return n.score(seqs, labels)
}

// score runs a forward-only pass over the whole set at once.
func (n *gorgoniaNet) score(seqs [][]int, labels []float64) (float64, float64, error) {
	fg, err := n.buildGraph(len(seqs))
	if err != nil {
		return 0, 0, err
	}

	ids := make([]int, len(seqs))
	for i := range ids {
		ids[i] = i
	}

	xT, yT, err := n.encodeBatch(seqs, labels, ids)
	if err != nil {
		return 0, 0, err
	}

	if err := gorgonia.Let(fg.x, xT); err != nil {
		return 0, 0, err
	}
	if err := gorgonia.Let(fg.y, yT); err != nil {
		return 0, 0, err
	}

	machine := gorgonia.NewTapeMachine(fg.g)
	defer machine.Close()

	if err := machine.RunAll(); err != nil {
		return 0, 0, fmt.Errorf("forward pass failed: %w", err)
	}

	loss := fg.cost.Value().Data().(float64)
	correct := countCorrect(fg.out.Value().Data().([]float64), labels, ids)

	return loss, float64(correct) / float64(len(seqs)), nil
}

func (n *gorgoniaNet) buildGraph(batch int) (*forwardGraph, error) {
	embedLayer := n.spec.Layers[0]
	vocab, dim := embedLayer.Vocab, embedLayer.Dim

	g := gorgonia.NewGraph()

	x := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(batch, vocab), gorgonia.WithName("x"))
	y := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(batch, 1), gorgonia.WithName("y"))

	embed := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(vocab, dim), gorgonia.WithName("embed"),
		gorgonia.WithValue(n.embed))
	params := gorgonia.Nodes{embed}

	// the bag rows are normalized by sequence length, so this
	// matmul is the embedding lookup and mean pooling at once
	cur, err := gorgonia.Mul(x, embed)
	if err != nil {
		return nil, err
	}

	for di, layer := range n.spec.Layers[2:] {
		rows, _ := n.denseShape(di)

		w := gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(rows, layer.Units),
			gorgonia.WithName(fmt.Sprintf("dense_%d_w", di)),
			gorgonia.WithValue(n.denseW[di]))
		bias := gorgonia.NewMatrix(g, tensor.Float64,
			gorgonia.WithShape(1, layer.Units),
			gorgonia.WithName(fmt.Sprintf("dense_%d_b", di)),
			gorgonia.WithValue(n.denseB[di]))
		params = append(params, w, bias)

		if cur, err = gorgonia.Mul(cur, w); err != nil {
			return nil, err
		}
		if cur, err = gorgonia.BroadcastAdd(cur, bias, nil, []byte{0}); err != nil {
			return nil, err
		}

		switch layer.Activation {
		case ActivationReLU:
			if cur, err = gorgonia.Rectify(cur); err != nil {
				return nil, err
			}
		case ActivationSigmoid:
			if cur, err = gorgonia.Sigmoid(cur); err != nil {
				return nil, err
			}
		}
	}

	cost, err := binaryCrossEntropy(cur, y)
	if err != nil {
		return nil, err
	}

	return &forwardGraph{g: g, x: x, y: y, out: cur, cost: cost, params: params}, nil
}

func binaryCrossEntropy(out, y *gorgonia.Node) (*gorgonia.Node, error) {
	eps := gorgonia.NewConstant(1e-8)
	one := gorgonia.NewConstant(1.0)

	pos, err := gorgonia.Add(out, eps)
	if err != nil {
		return nil, err
	}
	if pos, err = gorgonia.Log(pos); err != nil {
		return nil, err
	}
	if pos, err = gorgonia.HadamardProd(y, pos); err != nil {
		return nil, err
	}

	neg, err := gorgonia.Sub(one, out)
	if err != nil {
		return nil, err
	}
	if neg, err = gorgonia.Add(neg, eps); err != nil {
		return nil, err
	}
	if neg, err = gorgonia.Log(neg); err != nil {
		return nil, err
	}

	flipped, err := gorgonia.Sub(one, y)
	if err != nil {
		return nil, err
	}
	if neg, err = gorgonia.HadamardProd(flipped, neg); err != nil {
		return nil, err
	}

	sum, err := gorgonia.Add(pos, neg)
	if err != nil {
		return nil, err
	}
	if sum, err = gorgonia.Mean(sum); err != nil {
		return nil, err
	}

	return gorgonia.Neg(sum)
}

func newSolver(opts model.TrainOptions) (gorgonia.Solver, error) {
	lr := opts.LearnRate
	if lr <= 0 {
		lr = 0.01
	}

	switch opts.Optimizer {
	case "", "sgd":
		return gorgonia.NewVanillaSolver(gorgonia.WithLearnRate(lr)), nil
	case "momentum":
		return gorgonia.NewMomentum(gorgonia.WithLearnRate(lr)), nil
	case "adam":
		return gorgonia.NewAdamSolver(gorgonia.WithLearnRate(lr)), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", opts.Optimizer)
	}
}

// initParams draws fresh parameters, so every Fit call trains from
// scratch under the caller's seed.
func (n *gorgoniaNet) initParams(rng *rand.Rand) {
	embedLayer := n.spec.Layers[0]
	n.embed = glorot(rng, embedLayer.Vocab, embedLayer.Dim)

	denseLayers := n.spec.Layers[2:]
	n.denseW = make([]*tensor.Dense, len(denseLayers))
	n.denseB = make([]*tensor.Dense, len(denseLayers))
	for di, layer := range denseLayers {
		rows, _ := n.denseShape(di)
		n.denseW[di] = glorot(rng, rows, layer.Units)
		n.denseB[di] = tensor.New(tensor.WithShape(1, layer.Units),
			tensor.WithBacking(make([]float64, layer.Units)))
	}
}

// denseShape returns the weight shape of the di-th dense layer.
func (n *gorgoniaNet) denseShape(di int) (rows, cols int) {
	if di == 0 {
		rows = n.spec.Layers[0].Dim
	} else {
		rows = n.spec.Layers[2+di-1].Units
	}

	return rows, n.spec.Layers[2+di].Units
}

// encodeBatch builds the normalized bag-of-tokens matrix and the
// label column for the selected samples.
func (n *gorgoniaNet) encodeBatch(seqs [][]int, labels []float64, ids []int) (*tensor.Dense, *tensor.Dense, error) {
	vocab := n.spec.Layers[0].Vocab

	xData := make([]float64, len(ids)*vocab)
	yData := make([]float64, len(ids))

	for row, id := range ids {
		seq := seqs[id]
		if len(seq) == 0 {
			return nil, nil, fmt.Errorf("sample %d is empty", id)
		}

		norm := 1.0 / float64(len(seq))
		for _, token := range seq {
			if token < 0 || token >= vocab {
				return nil, nil, fmt.Errorf("token %d in sample %d is outside the %d-row embedding", token, id, vocab)
			}
			xData[row*vocab+token] += norm
		}

		yData[row] = labels[id]
	}

	xT := tensor.New(tensor.WithShape(len(ids), vocab), tensor.WithBacking(xData))
	yT := tensor.New(tensor.WithShape(len(ids), 1), tensor.WithBacking(yData))

	return xT, yT, nil
}

func countCorrect(probs []float64, labels []float64, ids []int) int {
	correct := 0
	for row, id := range ids {
		predicted := 0.0
		if probs[row] >= 0.5 {
			predicted = 1
		}
		if predicted == labels[id] {
			correct++
		}
	}

	return correct
}

func glorot(rng *rand.Rand, rows, cols int) *tensor.Dense {
	limit := math.Sqrt(6.0 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * limit
	}

	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(data))
}
