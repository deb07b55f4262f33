package osm2net

// NodeChecker Confirms presence of a node in the target graph
type NodeChecker interface {
	HasNode(id NetworkNodeID) bool
}

// Network Macroscopic road network assembled from resolved links
type Network struct {
	nodes map[NetworkNodeID]*NetworkNode
	links map[NetworkLinkID]*NetworkLink
}

func NewNetwork() *Network {
	return &Network{
		nodes: make(map[NetworkNodeID]*NetworkNode),
		links: make(map[NetworkLinkID]*NetworkLink),
	}
}

// AddNode Inserts or replaces node identified by its ID
func (net *Network) AddNode(node *NetworkNode) {
	net.nodes[node.ID] = node
}

// HasNode Checks if node with given ID is present in the network
func (net *Network) HasNode(id NetworkNodeID) bool {
	_, ok := net.nodes[id]
	return ok
}

// Node Returns node with given ID (or nil)
func (net *Network) Node(id NetworkNodeID) *NetworkNode {
	return net.nodes[id]
}

// AddLink Inserts or replaces link identified by its ID
func (net *Network) AddLink(link *NetworkLink) {
	net.links[link.ID()] = link
}

// Link Returns link with given ID (or nil)
func (net *Network) Link(id NetworkLinkID) *NetworkLink {
	return net.links[id]
}

// NodesCount Returns number of nodes in the network
func (net *Network) NodesCount() int {
	return len(net.nodes)
}

// LinksCount Returns number of links in the network
func (net *Network) LinksCount() int {
	return len(net.links)
}
