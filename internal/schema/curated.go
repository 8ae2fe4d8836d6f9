package schema

// Curated samples carry an explicit multi-step reasoning section. Unlike
// the generated records they are authored one by one against real kernel
// code, so the set is small and grows by hand. Group order: pointer
// analysis, async flow, call chain, pattern recognition, diverse
// question forms.

// netdevDriverCode backs the diverse-question samples: one driver
// snippet asked about from several angles.
const netdevDriverCode = `static int my_ndo_open(struct net_device *netdev)
{
    struct my_adapter *adapter = netdev_priv(netdev);
    napi_enable(&adapter->napi);
    netif_start_queue(netdev);
    return 0;
}

static netdev_tx_t my_ndo_start_xmit(struct sk_buff *skb,
                                      struct net_device *netdev)
{
    struct my_adapter *adapter = netdev_priv(netdev);
    /* 发送数据包 */
    return NETDEV_TX_OK;
}

static const struct net_device_ops my_netdev_ops = {
    .ndo_open = my_ndo_open,
    .ndo_stop = my_ndo_stop,
    .ndo_start_xmit = my_ndo_start_xmit,
};

static int my_probe(struct pci_dev *pdev, ...)
{
    struct net_device *netdev = alloc_etherdev(sizeof(*adapter));
    netdev->netdev_ops = &my_netdev_ops;
    register_netdev(netdev);
    return 0;
}`

func defaultCurated() []CuratedSample {
	return []CuratedSample{
		{
			ID:         "ptr_001",
			Category:   "pointer_analysis",
			Difficulty: "easy",
			Source:     "drivers/usb/storage/usb.c",
			Concepts:   []string{"函数指针", "结构体字段赋值", "USB 驱动"},
			Code: `/* 来自 Linux 内核 USB 存储驱动 */
static int storage_probe(struct usb_interface *intf,
                         const struct usb_device_id *id)
{
    struct us_data *us;

    us = kzalloc(sizeof(*us), GFP_KERNEL);
    if (!us)
        return -ENOMEM;

    /* 设置传输函数 */
    us->transport = usb_stor_Bulk_transport;
    us->proto_handler = usb_stor_transparent_scsi_command;

    return usb_stor_acquire_resources(us);
}

static void storage_disconnect(struct usb_interface *intf)
{
    struct us_data *us = usb_get_intfdata(intf);
    us->transport(us->srb, us);  /* 这里调用的是哪个函数？ */
}`,
			Question: "在 storage_disconnect 函数中，us->transport(us->srb, us) 调用的是哪个函数？请分析推理过程。",
			Thinking: `让我一步步分析这个函数指针调用：

1. 找到调用点：
   storage_disconnect 中有 us->transport(us->srb, us)

2. 分析 us 的来源：
   us = usb_get_intfdata(intf)，即 probe 时保存的设备私有数据

3. 追溯 transport 字段的赋值：
   storage_probe 中有 us->transport = usb_stor_Bulk_transport

4. 确认没有其他赋值路径：
   这段代码中 transport 只被赋值一次

结论：us->transport 指向 usb_stor_Bulk_transport`,
			Answer: "us->transport(us->srb, us) 调用的是 usb_stor_Bulk_transport 函数，它在 storage_probe 中通过 us->transport = usb_stor_Bulk_transport 赋值。从 probe 到 disconnect 期间没有其他代码修改 transport 字段，确定性 100%。",
		},
		{
			ID:         "ptr_002",
			Category:   "pointer_analysis",
			Difficulty: "medium",
			Source:     "drivers/net/ethernet/intel/e1000e/netdev.c",
			Concepts:   []string{"函数指针", "switch-case 条件赋值", "PCI 驱动", "硬件抽象"},
			Code: `/* 来自 Intel e1000e 网卡驱动 */
static int e1000_probe(struct pci_dev *pdev, const struct pci_device_id *ent)
{
    struct net_device *netdev;
    struct e1000_adapter *adapter;
    struct e1000_hw *hw;

    netdev = alloc_etherdev(sizeof(struct e1000_adapter));
    adapter = netdev_priv(netdev);
    hw = &adapter->hw;

    /* 根据硬件类型设置不同的操作函数 */
    switch (hw->mac.type) {
    case e1000_82571:
    case e1000_82572:
        hw->mac.ops.setup_link = e1000_setup_link_82571;
        hw->mac.ops.reset_hw = e1000_reset_hw_82571;
        break;
    case e1000_82573:
        hw->mac.ops.setup_link = e1000_setup_link_82573;
        hw->mac.ops.reset_hw = e1000_reset_hw_82573;
        break;
    case e1000_ich8lan:
    case e1000_ich9lan:
    case e1000_ich10lan:
        hw->mac.ops.setup_link = e1000_setup_link_ich8lan;
        hw->mac.ops.reset_hw = e1000_reset_hw_ich8lan;
        break;
    default:
        hw->mac.ops.setup_link = e1000_setup_link_generic;
        hw->mac.ops.reset_hw = e1000_reset_hw_generic;
        break;
    }

    /* 后续调用 */
    hw->mac.ops.reset_hw(hw);
    return 0;
}`,
			Question: "当 hw->mac.type 为 e1000_ich9lan 时，hw->mac.ops.reset_hw(hw) 调用的是哪个函数？",
			Thinking: `让我分析这个带条件分支的函数指针：

1. 找到调用点：hw->mac.ops.reset_hw(hw)

2. 条件是什么：题目给定 hw->mac.type 为 e1000_ich9lan

3. 分析 switch-case：
   e1000_ich9lan 落入 case e1000_ich8lan / e1000_ich9lan /
   e1000_ich10lan 这个合并分支

4. 该分支的赋值：
   hw->mac.ops.reset_hw = e1000_reset_hw_ich8lan

结论：reset_hw 被赋值为 e1000_reset_hw_ich8lan`,
			Answer: `当 hw->mac.type 为 e1000_ich9lan 时，hw->mac.ops.reset_hw(hw) 调用的是 e1000_reset_hw_ich8lan 函数。

推理依据：e1000_ich9lan 匹配 switch-case 中 ich8lan/ich9lan/ich10lan 的合并分支，该分支设置 hw->mac.ops.reset_hw = e1000_reset_hw_ich8lan。

注意：函数名是 ich8lan 但实际处理 ich8/ich9/ich10 三种硬件，这是常见的代码复用模式。给定条件下只有一个赋值点，确定性 100%。`,
		},
		{
			ID:         "ptr_003",
			Category:   "pointer_analysis",
			Difficulty: "hard",
			Source:     "drivers/gpu/drm/drm_crtc.c",
			Concepts:   []string{"函数指针", "ops 表模式", "DRM", "链表遍历", "驱动框架"},
			Code: `/* 来自 DRM (Direct Rendering Manager) 子系统 */

/* 定义操作函数表 */
struct drm_crtc_funcs {
    void (*reset)(struct drm_crtc *crtc);
    int (*set_config)(struct drm_mode_set *set);
    void (*destroy)(struct drm_crtc *crtc);
    int (*page_flip)(struct drm_crtc *crtc, struct drm_framebuffer *fb,
                     struct drm_pending_vblank_event *event, uint32_t flags);
};

/* 驱动注册 CRTC */
int drm_crtc_init_with_planes(struct drm_device *dev,
                              struct drm_crtc *crtc,
                              struct drm_plane *primary,
                              struct drm_plane *cursor,
                              const struct drm_crtc_funcs *funcs)
{
    crtc->dev = dev;
    crtc->funcs = funcs;  /* 存储函数指针表 */

    list_add_tail(&crtc->head, &dev->mode_config.crtc_list);
    return 0;
}

/* i915 Intel 显卡驱动的实现 */
static const struct drm_crtc_funcs intel_crtc_funcs = {
    .reset = intel_crtc_reset,
    .set_config = drm_atomic_helper_set_config,
    .destroy = intel_crtc_destroy,
    .page_flip = drm_atomic_helper_page_flip,
};

void intel_crtc_init(struct drm_device *dev, int pipe)
{
    struct intel_crtc *intel_crtc;

    intel_crtc = kzalloc(sizeof(*intel_crtc), GFP_KERNEL);

    drm_crtc_init_with_planes(dev, &intel_crtc->base,
                              primary, cursor,
                              &intel_crtc_funcs);  /* 传入函数表 */
}

/* DRM 核心调用代码 */
void drm_crtc_reset_all(struct drm_device *dev)
{
    struct drm_crtc *crtc;

    list_for_each_entry(crtc, &dev->mode_config.crtc_list, head) {
        if (crtc->funcs->reset)
            crtc->funcs->reset(crtc);  /* 这里调用的是什么？ */
    }
}`,
			Question: "在 Intel i915 显卡驱动的场景下，drm_crtc_reset_all 中的 crtc->funcs->reset(crtc) 最终调用的是哪个函数？请详细分析指针的传递链。",
			Thinking: `这是一个多层间接调用，让我逐层分析：

1. 调用点：crtc->funcs->reset(crtc)
   需要弄清：crtc 从哪来，crtc->funcs 指向哪，funcs->reset 是什么

2. crtc 的来源：
   list_for_each_entry 遍历设备的 crtc_list 链表

3. crtc 如何加入链表：
   drm_crtc_init_with_planes 中 list_add_tail(&crtc->head, ...)

4. funcs 的赋值：
   同一函数中 crtc->funcs = funcs，funcs 是参数传入的

5. 追踪调用者传入的 funcs：
   intel_crtc_init 传入 &intel_crtc_funcs

6. intel_crtc_funcs.reset = intel_crtc_reset

7. 完整传递链：
   intel_crtc_init → drm_crtc_init_with_planes(&intel_crtc_funcs)
   → crtc->funcs = &intel_crtc_funcs → 加入 crtc_list
   → drm_crtc_reset_all 遍历
   → crtc->funcs->reset = intel_crtc_funcs.reset = intel_crtc_reset`,
			Answer: `在 Intel i915 驱动场景下，crtc->funcs->reset(crtc) 调用的是 intel_crtc_reset 函数。

指针传递链：
  1. intel_crtc_init() 调用 drm_crtc_init_with_planes(..., &intel_crtc_funcs)
  2. drm_crtc_init_with_planes() 中 crtc->funcs = funcs（即 &intel_crtc_funcs），并把 crtc 加入 crtc_list
  3. drm_crtc_reset_all() 遍历 crtc_list，crtc->funcs->reset(crtc) 即 intel_crtc_funcs.reset(crtc)，也就是 intel_crtc_reset(crtc)

关键点：这是典型的 ops 表模式，框架定义接口、驱动实现具体函数；intel_crtc_funcs 是 const static 的全局唯一表；链表实现了多设备遍历。单一驱动场景下确定性 100%；如果系统中有多个显卡驱动，每个驱动有自己的 crtc_funcs，reset 会指向不同的函数。`,
		},
		{
			ID:         "ptr_004",
			Category:   "pointer_analysis",
			Difficulty: "expert",
			Source:     "net/core/dev.c",
			Concepts:   []string{"函数指针", "运行时修改", "NAPI", "条件赋值"},
			Code: `/* 网络设备 NAPI 机制 */
struct napi_struct {
    int (*poll)(struct napi_struct *napi, int budget);
    struct net_device *dev;
    int weight;
    /* ... */
};

/* 初始化 NAPI */
void netif_napi_add(struct net_device *dev, struct napi_struct *napi,
                    int (*poll)(struct napi_struct *, int), int weight)
{
    napi->poll = poll;
    napi->dev = dev;
    napi->weight = weight;
}

/* Intel e1000e 驱动的 NAPI 初始化 */
static int e1000_probe(struct pci_dev *pdev, ...)
{
    struct e1000_adapter *adapter;

    /* 根据硬件特性选择不同的 poll 函数 */
    if (adapter->flags & FLAG_HAS_MSIX) {
        netif_napi_add(netdev, &adapter->napi, e1000_poll_msix, 64);
    } else {
        netif_napi_add(netdev, &adapter->napi, e1000_poll, 64);
    }

    return 0;
}

/* NAPI 轮询入口 */
static void napi_poll(struct napi_struct *n)
{
    int work = n->poll(n, n->weight);  /* 这里调用什么？ */
    /* ... */
}

/* 动态切换场景：中断合并优化 */
void e1000_configure_rx(struct e1000_adapter *adapter)
{
    if (adapter->rx_ring_count > 4) {
        /* 多队列优化 */
        adapter->napi.poll = e1000_poll_multiqueue;
    }
}`,
			Question: "分析 napi_poll 中 n->poll(n, n->weight) 可能调用哪些函数？需要考虑所有情况。",
			Thinking: `这个场景里函数指针可能在多处被修改：

1. 找到所有 poll 的赋值点：
   - netif_napi_add 中 napi->poll = poll（参数传入）
   - e1000_configure_rx 中 adapter->napi.poll = e1000_poll_multiqueue

2. probe 中的初始赋值：
   有 FLAG_HAS_MSIX → e1000_poll_msix
   无 MSIX → e1000_poll

3. 运行时修改：
   rx_ring_count > 4 → e1000_poll_multiqueue

4. 时序分析：
   probe 先设置（msix 或普通），configure_rx 可能之后覆盖

5. 所有可能取值：
   e1000_poll_msix、e1000_poll、e1000_poll_multiqueue`,
			Answer: `n->poll(n, n->weight) 可能调用以下 3 个函数之一：

  - e1000_poll_msix：硬件支持 MSIX，且 rx_ring_count ≤ 4
  - e1000_poll：硬件不支持 MSIX，且 rx_ring_count ≤ 4
  - e1000_poll_multiqueue：rx_ring_count > 4（configure_rx 运行时覆盖之前的值）

赋值时序：probe 时按 FLAG_HAS_MSIX 二选一；configure_rx 时若队列数大于 4 则改为 e1000_poll_multiqueue。

确定性：不确定，取决于运行时硬件配置。静态分析能做的是列出所有可能的目标函数并标注各自的条件；用户指定硬件参数后才能进一步缩小范围，这正是需要场景化分析的原因。`,
		},
		{
			ID:         "async_001",
			Category:   "async_flow",
			Difficulty: "medium",
			Source:     "drivers/net/ethernet",
			Concepts:   []string{"workqueue", "中断下半部", "执行上下文"},
			Code: `static void rx_refill_work(struct work_struct *work)
{
    struct nic *nic = container_of(work, struct nic, refill_task);
    while (nic_rx_ring_low(nic))
        nic_alloc_rx_buffer(nic, GFP_KERNEL);
}

static irqreturn_t nic_interrupt(int irq, void *dev_id)
{
    struct nic *nic = dev_id;
    if (nic_rx_ring_low(nic))
        schedule_work(&nic->refill_task);
    return IRQ_HANDLED;
}`,
			Question: "rx_refill_work 中为什么可以使用 GFP_KERNEL 分配内存，而 nic_interrupt 中不行？",
			Thinking: `1. nic_interrupt 是硬中断处理函数，运行在硬中断上下文，不可睡眠。
   GFP_KERNEL 分配可能睡眠等待内存回收，所以中断里只能用 GFP_ATOMIC。

2. rx_refill_work 是通过 schedule_work 提交的工作项。
   工作队列由 kworker 内核线程执行，运行在进程上下文。

3. 进程上下文允许睡眠，因此 GFP_KERNEL 是安全的。
   这正是把补充接收缓冲区的耗时工作挪到下半部的原因。`,
			Answer: "因为 rx_refill_work 由 kworker 线程在进程上下文执行，可以睡眠，所以允许 GFP_KERNEL；nic_interrupt 在硬中断上下文运行，不可睡眠，只能使用 GFP_ATOMIC。这就是中断上半部/下半部划分的典型动机。",
		},
		{
			ID:         "async_002",
			Category:   "async_flow",
			Difficulty: "medium",
			Source:     "drivers/watchdog/softdog.c",
			Concepts:   []string{"timer", "软中断", "周期调度", "看门狗", "mod_timer"},
			Code: `/* 软件看门狗驱动 */
static struct timer_list watchdog_timer;
static unsigned long driver_open;
static int soft_margin = 60;  /* 默认 60 秒超时 */

static void watchdog_fire(struct timer_list *t)
{
    if (time_after(jiffies, watchdog_last_pet + soft_margin * HZ)) {
        pr_crit("Software Watchdog Timer expired!\n");
        emergency_restart();  /* 系统重启 */
    }

    /* 重新调度定时器 */
    mod_timer(&watchdog_timer, jiffies + HZ);
}

static int softdog_open(struct inode *inode, struct file *file)
{
    if (test_and_set_bit(0, &driver_open))
        return -EBUSY;

    timer_setup(&watchdog_timer, watchdog_fire, 0);
    mod_timer(&watchdog_timer, jiffies + HZ);  /* 1秒后触发 */

    return 0;
}

static ssize_t softdog_write(struct file *file, const char __user *buf,
                             size_t count, loff_t *ppos)
{
    watchdog_last_pet = jiffies;  /* "喂狗" */
    return count;
}`,
			Question: "分析软件看门狗的工作机制：定时器是如何周期性执行的？watchdog_fire 函数在什么上下文执行？",
			Thinking: `分析看门狗定时器的周期执行机制：

1. 初始化：
   softdog_open 中 timer_setup 绑定回调 watchdog_fire，
   mod_timer 设置 1 秒后触发

2. 定时器触发：
   1 秒后内核调用 watchdog_fire

3. 周期机制：
   watchdog_fire 末尾 mod_timer(&watchdog_timer, jiffies + HZ)
   重新设置定时器，又是 1 秒后触发，形成循环

4. 执行上下文：
   定时器回调在软中断上下文执行（TIMER_SOFTIRQ），不可睡眠
   路径：run_timer_softirq → expire_timers → call_timer_fn

5. 看门狗逻辑：
   用户程序定期写设备文件 → softdog_write 更新 watchdog_last_pet；
   每秒检查上次"喂狗"是否超过 60 秒，超时则 emergency_restart`,
			Answer: `周期执行机制：softdog_open 中 timer_setup 绑定回调、mod_timer 设置 1 秒后触发；watchdog_fire 在自己末尾再次调用 mod_timer(&watchdog_timer, jiffies + HZ) 重新调度自己，实现每秒一次的无限循环。

执行上下文：watchdog_fire 在软中断上下文（TIMER_SOFTIRQ）执行。调用链：硬件时钟中断 → irq_exit → invoke_softirq → do_softirq → run_timer_softirq → expire_timers → call_timer_fn → watchdog_fire。因此回调中不可睡眠、不可调用可能阻塞的函数；可以访问原子变量、可以使用 spin_lock。

时间线：T=0s open 启动定时器，之后每秒执行一次 watchdog_fire（软中断）；若 60 秒内没有写入"喂狗"，则触发 emergency_restart。`,
		},
		{
			ID:         "chain_001",
			Category:   "call_chain",
			Difficulty: "medium",
			Source:     "fs/read_write.c",
			Concepts:   []string{"VFS", "系统调用", "f_op 分发"},
			Code: `static ssize_t my_read(struct file *filp, char __user *buf,
                       size_t count, loff_t *ppos)
{
    return simple_read_from_buffer(buf, count, ppos,
                                   filp->private_data, DATA_LEN);
}

static const struct file_operations my_fops = {
    .owner = THIS_MODULE,
    .read  = my_read,
};`,
			Question: "用户程序对这个设备调用 read() 后，内核经过哪些步骤到达 my_read？",
			Thinking: `1. read() 是系统调用，入口在 fs/read_write.c 的 sys_read。
2. sys_read 调用 ksys_read，根据 fd 找到 struct file。
3. ksys_read 调用 vfs_read，做权限和范围检查。
4. vfs_read 通过 file->f_op->read 分发。
5. 该设备注册的 file_operations 中 .read = my_read，
   所以最终调用 my_read。`,
			Answer: "调用路径是 sys_read → ksys_read → vfs_read → f_op->read()，其中 f_op 指向注册的 my_fops，.read 字段指向 my_read，因此最终执行 my_read。",
		},
		{
			ID:         "pattern_001",
			Category:   "pattern_recognition",
			Difficulty: "medium",
			Source:     "多种驱动",
			Concepts:   []string{"模式识别", "函数指针", "分析难度"},
			Code: `/* 模式1：直接赋值 */
static struct file_operations fops = {
    .open = my_open,
    .read = my_read,
};

/* 模式2：宏初始化 */
INIT_WORK(&dev->work, my_work_handler);
timer_setup(&dev->timer, my_timer_fn, 0);

/* 模式3：注册函数 */
request_irq(irq, my_irq_handler, 0, "mydev", dev);
register_netdev(netdev);  /* netdev->netdev_ops 已设置 */

/* 模式4：运行时赋值 */
dev->ops = &default_ops;
if (feature_enabled)
    dev->ops = &enhanced_ops;

/* 模式5：函数返回 */
struct ops *get_ops(int type) {
    switch (type) {
    case TYPE_A: return &ops_a;
    case TYPE_B: return &ops_b;
    }
}
dev->ops = get_ops(config->type);

/* 模式6：回调链 */
struct notifier_block nb = {
    .notifier_call = my_notifier,
};
register_netdevice_notifier(&nb);`,
			Question: "识别以上代码中的所有函数指针绑定模式，并说明每种模式的分析难度。",
			Thinking: `让我逐一分析这些模式：

1. 直接赋值：.open = my_open
   静态初始化，编译时确定。难度：简单

2. 宏初始化：INIT_WORK(&dev->work, my_work_handler)
   宏展开后是赋值。难度：简单（需要知道宏定义）

3. 注册函数：request_irq(irq, my_irq_handler, ...)
   通过函数参数传递回调。难度：简单（参数位置固定）

4. 运行时条件赋值：
   dev->ops 先赋 &default_ops，条件满足再覆盖为 &enhanced_ops
   结果取决于运行时条件。难度：中等（需要条件分析）

5. 函数返回：dev->ops = get_ops(config->type)
   需要跨函数分析返回值。难度：困难

6. 回调链：register_netdevice_notifier(&nb)
   加入通知链，被动调用。难度：中等（需要知道通知链机制）`,
			Answer: `共有六种函数指针绑定模式：

1. 直接赋值（.open = my_open）：静态初始化，语法解析即可，编译时确定，确定性 100%。
2. 宏初始化（INIT_WORK、timer_setup）：宏展开后就是赋值，需要内置宏知识，确定性 100%。
3. 注册函数（request_irq）：回调通过固定位置的参数传入，确定性 100%。
4. 运行时条件赋值（if (x) ops = &a）：需要数据流分析，结果是一组可能值；用户指定条件后才能确定。
5. 函数返回（ops = get_ops(type)）：需要过程间分析，跟踪返回值，取决于参数，分析难度最高。
6. 回调链/通知链（register_netdevice_notifier）：需要识别注册函数并关联结构体，触发时机由事件决定。

难度排序：直接赋值 = 宏初始化 = 注册函数 < 条件赋值 = 回调链 < 函数返回。`,
		},
		{
			ID:         "diverse_001",
			Category:   "diverse_question",
			Difficulty: "medium",
			Source:     "drivers/net/",
			Concepts:   []string{"网络设备", "ifconfig", "ndo_open"},
			Code:       netdevDriverCode,
			Question:   "用户在 shell 中执行 `ifconfig eth0 up` 时，内核会调用驱动的哪个函数？",
			Thinking: `这是一个从用户命令追踪到内核函数的问题。

1. 用户命令：ifconfig eth0 up
   ifconfig 是用户空间工具，设置网络接口为 UP 状态

2. 系统调用：
   ifconfig 最终调用 ioctl(SIOCSIFFLAGS) 或 netlink

3. 内核处理：
   dev_change_flags() → __dev_open() → ops->ndo_open()

4. 驱动函数：
   netdev->netdev_ops = &my_netdev_ops，
   my_netdev_ops.ndo_open = my_ndo_open

所以最终调用 my_ndo_open`,
			Answer: `当执行 ifconfig eth0 up 时，内核会调用 my_ndo_open 函数。

调用链：用户空间 ifconfig eth0 up → 系统调用 ioctl(SIOCSIFFLAGS) 或 netlink → dev_change_flags() → __dev_open() [net/core/dev.c] → ops->ndo_open(dev)，其中 netdev_ops 指向 my_netdev_ops，.ndo_open 字段为 my_ndo_open。

确定性：100%。`,
		},
		{
			ID:         "diverse_002",
			Category:   "diverse_question",
			Difficulty: "medium",
			Source:     "drivers/net/",
			Concepts:   []string{"网络设备", "send", "ndo_start_xmit", "协议栈"},
			Code:       netdevDriverCode,
			Question:   "当应用程序调用 send() 发送网络数据时，数据包最终通过哪个驱动函数发出？",
			Thinking: `追踪 send() 系统调用到驱动函数。

1. send() → sys_sendto()
2. 协议栈处理：TCP/UDP/IP
3. 发送队列：dev_queue_xmit()
4. 驱动调用：ndo_start_xmit()`,
			Answer: `应用调用 send() 后，数据包通过 my_ndo_start_xmit 发出。

调用链：send(sockfd, buf, len, 0) → sys_sendto() → sock_sendmsg() → 协议栈（tcp_sendmsg → tcp_push → ip_queue_xmit → ip_local_out）→ dev_queue_xmit() [net/core/dev.c] → dev_hard_start_xmit() → ops->ndo_start_xmit(skb, dev)，即 my_ndo_start_xmit(skb, netdev)。

注意：实际路径可能更复杂，中间还有排队和流量控制等环节。`,
		},
		{
			ID:         "diverse_003",
			Category:   "diverse_question",
			Difficulty: "easy",
			Source:     "drivers/net/",
			Concepts:   []string{"ops 表", "注册模式"},
			Code:       netdevDriverCode,
			Question:   "这个驱动是用什么方式注册 ndo_open 回调的？",
			Thinking: `看代码中的绑定方式。

在 my_probe 中：
netdev->netdev_ops = &my_netdev_ops;

my_netdev_ops 是静态初始化的：
.ndo_open = my_ndo_open

这是 "ops 表静态初始化 + 指针赋值" 模式`,
			Answer: `这个驱动使用 ops 表静态初始化方式注册回调：先静态定义 my_netdev_ops 表并在其中写 .ndo_open = my_ndo_open，再在 probe 时执行 netdev->netdev_ops = &my_netdev_ops 把表挂到设备上。

特点：ops 表是 const 的，不可修改；所有回调在编译时确定；分析难度为最简单的一档。`,
		},
	}
}
