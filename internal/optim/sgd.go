package optim

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate descent in persistent directions and dampens
// oscillations, which matters on the oscillatory landscapes variational
// circuits produce.
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}
}

// Step applies one gradient-descent update to params in place.
func (s *SGD) Step(params, grads []float64) error {
	if len(params) != len(grads) {
		return ErrLength
	}
	if s.momentum == 0 {
		for i, g := range grads {
			params[i] -= s.lr * g
		}
		return nil
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	} else if len(s.velocity) != len(params) {
		return ErrLength
	}
	for i, g := range grads {
		s.velocity[i] = s.momentum*s.velocity[i] + g
		params[i] -= s.lr * s.velocity[i]
	}
	return nil
}
