package schedulers

import "os-scheduler/internal/responses"

var algorithmComplexity = map[Algorithm]responses.Complexity{
	AlgorithmFCFS: {
		Time:        responses.TimeComplexity{Best: "O(n) [already sorted]", Average: "O(n log n)", Worst: "O(n log n)"},
		Space:       "O(n)",
		Description: "Simple but can lead to convoy effect",
	},
	AlgorithmRoundRobin: {
		Time:        responses.TimeComplexity{Best: "O(n) [large quantum]", Average: "O(n log n)", Worst: "O(n²) [small quantum]"},
		Space:       "O(n)",
		Description: "Fair but high context switching overhead",
	},
	AlgorithmSJF: {
		Time:        responses.TimeComplexity{Best: "O(n log n)", Average: "O(n²)", Worst: "O(n²)"},
		Space:       "O(n)",
		Description: "Optimal for minimizing waiting time",
	},
	AlgorithmPriority: {
		Time:        responses.TimeComplexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)"},
		Space:       "O(n)",
		Description: "Can lead to starvation of low-priority processes",
	},
	AlgorithmSRTF: {
		Time:        responses.TimeComplexity{Best: "O(n log n)", Average: "O(n²)", Worst: "O(n²)"},
		Space:       "O(n)",
		Description: "Preemptive SJF - optimal but complex",
	},
}

func ComplexityOf(algorithm Algorithm) responses.Complexity {
	return algorithmComplexity[algorithm]
}
